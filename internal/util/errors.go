package util

import (
	"github.com/gofiber/fiber/v2"
)

// AppError is the single error type handlers and usecases return for expected
// failures. The fiber error handler maps it onto the
// {success:false, message, errors?} envelope.
type AppError struct {
	Code    int
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError carries every violated field, not just the first.
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: "Validation failed", Fields: fields}
}

func NewBadRequest(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Code: fiber.StatusConflict, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Code: fiber.StatusForbidden, Message: message}
}

func NewUnauthenticated(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

func NewInternal(err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: "Internal server error", Err: err}
}

func (e *AppError) IsValidation() bool { return e.Code == fiber.StatusBadRequest && e.Fields != nil }
