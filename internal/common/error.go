// Package common defines the error taxonomy shared by the storage, hashing
// and account layers. Callers should use errors.Is / errors.As to match
// these values; wrapper types keep the underlying cause reachable.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrorInvalidArgument reports a nil or absent required value. It is a
	// programming error and is never retried.
	ErrorInvalidArgument = errors.New("invalid argument")

	// ErrorNotFound reports that the referenced entity id does not exist.
	ErrorNotFound = errors.New("not found")

	// ErrorUserNameTaken reports a violation of the username uniqueness
	// constraint raised by the storage engine.
	ErrorUserNameTaken = errors.New("user name already taken")

	// ErrorStorage is the kind matched by every *StorageError.
	ErrorStorage = errors.New("storage error")

	// ErrorHashing is the kind matched by every *HashingError.
	ErrorHashing = errors.New("hashing error")
)

// StorageError is an I/O or constraint failure in the durable layer.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err as a storage failure of operation op.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrorStorage) true for any StorageError.
func (e *StorageError) Is(target error) bool { return target == ErrorStorage }

// HashingError is a malformed hash input or a failure of the hashing primitive.
type HashingError struct {
	Op  string
	Err error
}

// NewHashingError wraps err as a hashing failure of operation op.
func NewHashingError(op string, err error) *HashingError {
	return &HashingError{Op: op, Err: err}
}

func (e *HashingError) Error() string {
	return fmt.Sprintf("hashing: %s: %v", e.Op, e.Err)
}

func (e *HashingError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrorHashing) true for any HashingError.
func (e *HashingError) Is(target error) bool { return target == ErrorHashing }
