// Package apierr defines the request rejections every handler reports.
// All of them are terminal and surface as 400 responses.
package apierr

import (
	"errors"
	"fmt"
)

const defaultEmptyBody = "Body cannot be empty"

// MissingBodyError means the request carried no JSON object.
type MissingBodyError struct {
	Message string
}

func (e *MissingBodyError) Error() string {
	if e.Message == "" {
		return defaultEmptyBody
	}
	return e.Message
}

// MissingFieldError names the first required field absent from the body.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string { return "Specify " + e.Field }

// InvalidValueError means a field or path value has the wrong type.
type InvalidValueError struct {
	Field string
}

func (e *InvalidValueError) Error() string { return "Invalid " + e.Field }

// NotFoundError means the addressed row does not exist.
type NotFoundError struct {
	Entity  string
	ID      int64
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Entity + " do not exist"
}

// InvalidForeignKeyError names a reference that does not resolve to a row.
type InvalidForeignKeyError struct {
	Field string
}

func (e *InvalidForeignKeyError) Error() string { return "Invalid " + e.Field }

// DuplicateError means the write would create a second row for a unique pair.
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

func MissingBody(message string) error { return &MissingBodyError{Message: message} }

func MissingField(field string) error { return &MissingFieldError{Field: field} }

func InvalidValue(field string) error { return &InvalidValueError{Field: field} }

func NotFound(entity string, id int64) error { return &NotFoundError{Entity: entity, ID: id} }

// NotFoundf builds a NotFoundError with a custom message.
func NotFoundf(entity string, id int64, format string, args ...any) error {
	return &NotFoundError{Entity: entity, ID: id, Message: fmt.Sprintf(format, args...)}
}

func InvalidForeignKey(field string) error { return &InvalidForeignKeyError{Field: field} }

func Duplicate(format string, args ...any) error {
	return &DuplicateError{Message: fmt.Sprintf(format, args...)}
}

// IsRejection reports whether err is one of the request rejections above.
func IsRejection(err error) bool {
	var (
		body    *MissingBodyError
		field   *MissingFieldError
		invalid *InvalidValueError
		missing *NotFoundError
		fk      *InvalidForeignKeyError
		dup     *DuplicateError
	)
	return errors.As(err, &body) ||
		errors.As(err, &field) ||
		errors.As(err, &invalid) ||
		errors.As(err, &missing) ||
		errors.As(err, &fk) ||
		errors.As(err, &dup)
}
