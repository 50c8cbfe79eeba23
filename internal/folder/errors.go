package folder

import "fmt"

// DataSourceError wraps a failed or timed-out relational read. The fetch it
// aborted is discarded whole; callers retry from scratch.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source: %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }
