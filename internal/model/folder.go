package model

import "time"

// FolderKind distinguishes company-level from employee-level folders.
type FolderKind string

const (
	FolderKindCompany  FolderKind = "company"
	FolderKindEmployee FolderKind = "employee"
)

// Folder is an aggregated, virtual grouping of stored documents by resolved
// display name. It is derived from DocumentRows and never persisted.
//
// Invariant: for a given (scope, DisplayName) there is exactly one Folder;
// raw prefixes that alias to the same display name are merged before emission.
type Folder struct {
	ID            string     `json:"id"`
	DisplayName   string     `json:"display_name"`
	Kind          FolderKind `json:"kind"`
	CompanyName   string     `json:"company_name"`
	EmployeeID    string     `json:"employee_id,omitempty"`
	DocumentCount int        `json:"document_count"`
	LastModified  time.Time  `json:"last_modified"`
	Path          string     `json:"path"`
}
