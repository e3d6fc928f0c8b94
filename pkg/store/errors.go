package store

import "fmt"

// SchemaError reports that the fast load path's assumptions about the
// physical schema do not hold: a missing table or a user_version this code
// was not written against. It is recoverable; the loader retries through
// the export fallback.
type SchemaError struct {
	Detail string
}

func (e *SchemaError) Error() string {
	return "schema mismatch: " + e.Detail
}

// StoreError wraps an operational failure reported by the database driver.
// During a fast load it is recoverable via the fallback path; anywhere else
// it propagates to the caller with context.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
