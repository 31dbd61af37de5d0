package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies failures so callers can map them without inspecting messages.
type Code string

const (
	CodeInvalidArgument  Code = "invalid_argument"
	CodeInvalidOperation Code = "invalid_operation"
	CodeConflict         Code = "conflict"
	CodeNotFound         Code = "not_found"
)

// Error is the error type returned by entities, handlers and the storage mapping.
type Error struct {
	Code    Code
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Op != "" && e.Message != "":
		return fmt.Sprintf("%s: %s (%s)", e.Op, e.Message, e.Code)
	case e.Op != "":
		return fmt.Sprintf("%s (%s)", e.Op, e.Code)
	case e.Message != "":
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an error with an explicit code and operation.
func New(code Code, op, message string) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
	}
}

// Wrap annotates err with a code, keeping it reachable through errors.Is/As.
func Wrap(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: err.Error(),
		Cause:   err,
	}
}

func InvalidArgument(op, message string) error { return New(CodeInvalidArgument, op, message) }

func InvalidOperation(op, message string) error { return New(CodeInvalidOperation, op, message) }

func NotFound(op, message string) error { return New(CodeNotFound, op, message) }

func Conflict(op, message string) error { return New(CodeConflict, op, message) }

// IsCode reports whether err, or any error it wraps, carries code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) Code {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return ""
	}
	return appErr.Code
}
