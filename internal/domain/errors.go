package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError is returned when a lookup matched zero rows.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StoreError is a failure reported by the record store.
// Status is the status the store reported, zero when it reported none.
type StoreError struct {
	Status  int
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

// HTTPStatus is the status the error is surfaced with.
func (e *StoreError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// UpstreamError is a failed call to the chart API.
type UpstreamError struct {
	Message string
	Status  int
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s [status=%d]", e.Message, e.Status)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// GenerationError wraps whatever the language model provider failed with.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
