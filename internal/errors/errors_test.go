//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrInvalidName, ErrNameCollision)
	assert.NotEqual(t, ErrInvalidName, ErrAlreadyExists)
	assert.NotEqual(t, ErrAlreadyExists, ErrPathUncreatable)
	assert.NotEqual(t, ErrInternal, ErrInvalidName)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "invalid name",
		Message:  "application name must start with a lowercase letter",
		Location: "9lives",
		Hint:     "Pass --app with a valid name.",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: invalid name")
	assert.Contains(t, output, "Location: 9lives")
	assert.Contains(t, output, "must start with a lowercase letter")
	assert.Contains(t, output, "Hint: Pass --app with a valid name.")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrInvalidName,
	}

	assert.True(t, errors.Is(detail, ErrInvalidName))
	assert.Equal(t, ErrInvalidName, detail.Unwrap())
}

func TestNewInvalidNameError(t *testing.T) {
	err := NewInvalidNameError("bad segment", "foo.bar", "Use dotted PascalCase.")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrInvalidName))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "invalid name", detail.Type)
	assert.Equal(t, "bad segment", detail.Message)
	assert.Equal(t, "foo.bar", detail.Location)
	assert.Equal(t, "Use dotted PascalCase.", detail.Hint)
}

func TestNewAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("file exists", "demo/README.md")

	assert.True(t, errors.Is(err, ErrAlreadyExists))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "demo/README.md", detail.Location)
	assert.NotEmpty(t, detail.Hint)
}

func TestNewPathUncreatableError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewPathUncreatableError("mkdir failed", "demo/config", cause)

	assert.True(t, errors.Is(err, ErrPathUncreatable))
	assert.True(t, errors.Is(err, cause))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNameCollision, "module Elixir.MyApp already defined")

	assert.True(t, errors.Is(wrapped, ErrNameCollision))
	assert.Contains(t, wrapped.Error(), "already defined")
}
