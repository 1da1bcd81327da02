// Package server provides the HTTP API for the ATS scanner.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/ats-scanner/internal/analysis"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPayloadTooLarge indicates the request body exceeded the upload limit
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// ErrDocumentTooLarge indicates one document in the body exceeded the upload limit
type ErrDocumentTooLarge struct {
	Field string
	Size  int
	Limit int64
}

func (e *ErrDocumentTooLarge) Error() string {
	return fmt.Sprintf("%s is too large: %d bytes exceeds the %d byte upload limit", e.Field, e.Size, e.Limit)
}

// ErrBadRequest indicates a malformed request body
type ErrBadRequest struct {
	Cause error
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Cause)
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// validationError converts validator output into the first failing field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ErrBadRequest{Cause: err}
	}
	fe := fieldErrs[0]
	msg := "must not be blank"
	if fe.Tag() == "required" {
		msg = "is required"
	}
	return &ErrValidation{Field: fe.Field(), Message: msg}
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		tooLargeErr   *ErrPayloadTooLarge
		docTooLarge   *ErrDocumentTooLarge
		badRequestErr *ErrBadRequest
		inputErr      *analysis.InputError
	)
	switch {
	case errors.As(err, &tooLargeErr), errors.As(err, &docTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validationErr), errors.As(err, &badRequestErr), errors.As(err, &inputErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
