package store

import "errors"

// ErrNotFound is returned by Update when no row has the given id.
var ErrNotFound = errors.New("shopping item not found")

// StorageError wraps a failed database operation. The triggering write is
// lost but the store's visible state is unchanged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
