package model

import "time"

// DocumentRow is the metadata of one stored object as recorded in the
// relational store. It is read-only to the folder subsystem: rows are owned
// by the database and never mutated after fetch.
//
// StorageKey is a slash-delimited path whose first segment is a company
// prefix (historically inconsistent; see the folder package alias tables).
type DocumentRow struct {
	ID          string    `json:"id"`
	StorageKey  string    `json:"storage_key"`
	EmployeeID  string    `json:"employee_id,omitempty"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url,omitempty"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Prefix returns the first path segment of the storage key, the raw
// company (or special bucket) identifier.
func (d DocumentRow) Prefix() string {
	for i := 0; i < len(d.StorageKey); i++ {
		if d.StorageKey[i] == '/' {
			return d.StorageKey[:i]
		}
	}
	return d.StorageKey
}
