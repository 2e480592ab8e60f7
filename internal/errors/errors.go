// Package errors provides sentinel errors for the sockforge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidName indicates an app or module identifier failed its syntax rule.
	ErrInvalidName = errors.New("invalid name")

	// ErrNameCollision indicates the module name is already defined in the
	// target namespace.
	ErrNameCollision = errors.New("name collision")

	// ErrAlreadyExists indicates a generation target file is already present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrPathUncreatable indicates the filesystem refused a directory creation.
	ErrPathUncreatable = errors.New("path uncreatable")

	// ErrInternal indicates a bug in the template catalog or renderer,
	// never a user input problem.
	ErrInternal = errors.New("internal error")
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending identifier or path (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInvalidNameError creates an invalid identifier error with details.
func NewInvalidNameError(message, name, hint string) error {
	return &DetailError{
		Type:     "invalid name",
		Message:  message,
		Location: name,
		Hint:     hint,
		Cause:    ErrInvalidName,
	}
}

// NewNameCollisionError creates a module name collision error with details.
func NewNameCollisionError(message, name, hint string) error {
	return &DetailError{
		Type:     "name collision",
		Message:  message,
		Location: name,
		Hint:     hint,
		Cause:    ErrNameCollision,
	}
}

// NewAlreadyExistsError creates an existing-target error with details.
func NewAlreadyExistsError(message, path string) error {
	return &DetailError{
		Type:     "target already exists",
		Message:  message,
		Location: path,
		Hint:     "Generation never overwrites existing files. Choose an empty target path.",
		Cause:    ErrAlreadyExists,
	}
}

// NewPathUncreatableError creates a directory creation failure error.
func NewPathUncreatableError(message, path string, cause error) error {
	return &DetailError{
		Type:     "path uncreatable",
		Message:  message,
		Location: path,
		Hint:     "Check permissions on the target directory.",
		Cause:    fmt.Errorf("%w: %w", ErrPathUncreatable, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
