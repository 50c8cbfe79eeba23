package model

// Employee is the relational employee record. Its Name field is the
// priority-1 input for employee display-name resolution.
type Employee struct {
	ID      string `json:"id"`
	Company string `json:"company"`
	Name    string `json:"name"`
}
