package store

import "fmt"

// PersistenceError reports a failed read or write against the slot. Callers
// recover from it locally: the in-memory state stays authoritative.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, SlotKey, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
