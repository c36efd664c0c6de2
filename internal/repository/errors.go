package repository

import "fmt"

// ValidationError reports caller input that fails a required-field check.
// The write is not performed; the caller keeps its in-progress input.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// IndexOutOfRangeError reports a remove position outside the stored
// sequence. It indicates stale caller state; the stored list is unchanged.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for list of length %d", e.Index, e.Length)
}

// StoreUnavailableError wraps an underlying key-value store failure. The
// operation did not persist; callers should keep in-memory state and inform
// the user.
type StoreUnavailableError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }
