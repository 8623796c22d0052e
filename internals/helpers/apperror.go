package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION"
	KindAuth       ErrorKind = "AUTH"
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindInternal   ErrorKind = "INTERNAL"
)

// AppError is the error type business services return. Status is the HTTP
// status the central error handler answers with.
type AppError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func ErrValidation(msg string) *AppError {
	return &AppError{Kind: KindValidation, Status: fiber.StatusBadRequest, Message: msg}
}

func ErrValidationFields(msg string, fields map[string][]string) *AppError {
	return &AppError{Kind: KindValidation, Status: fiber.StatusBadRequest, Message: msg, Fields: fields}
}

func ErrAuth(msg string) *AppError {
	return &AppError{Kind: KindAuth, Status: fiber.StatusUnauthorized, Message: msg}
}

func ErrNotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Status: fiber.StatusNotFound, Message: msg}
}

func ErrInternal(msg string, cause error) *AppError {
	return &AppError{Kind: KindInternal, Status: fiber.StatusInternalServerError, Message: msg, Err: cause}
}

// WithCause attaches the underlying error without changing what the client sees.
func (e *AppError) WithCause(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

func IsKind(err error, kind ErrorKind) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
