package storage

import (
	"errors"
	"fmt"
)

// StorageError represents a storage-specific error with a code and message.
// The codes mirror domain error codes to avoid a circular import.
type StorageError struct {
	Code    string
	Message string
}

const (
	codeInvalid  = "invalid"
	codeNotFound = "not_found"
)

func (e *StorageError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for domain error mapping.
func (e *StorageError) ErrorCode() string {
	return e.Code
}

// ErrKeyNotFound creates an error for a key that has never been written.
func ErrKeyNotFound(key string) error {
	return &StorageError{
		Code:    codeNotFound,
		Message: fmt.Sprintf("key not found: %s", key),
	}
}

// ErrInvalidKey creates an error for keys that would escape the state dir.
func ErrInvalidKey(key string) error {
	return &StorageError{
		Code:    codeInvalid,
		Message: fmt.Sprintf("invalid storage key: %s", key),
	}
}

// IsNotFound reports whether err is a missing-key storage error, however
// deeply wrapped.
func IsNotFound(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.Code == codeNotFound
}
