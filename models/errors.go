package models

import (
	"fmt"
	"net/http"
)

// APIError is the typed error every service returns for expected failures.
// Controllers translate it straight into the response envelope; anything
// that is not an APIError is treated as a 500.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewBadRequest(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

func NewUnauthorized(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: msg}
}

func NewNotFound(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewDuplicate is a bad-request subtype for unique-constraint violations
// caught by the pre-insert existence check.
func NewDuplicate(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}
