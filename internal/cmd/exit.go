package cmd

import (
	"errors"

	serrors "github.com/sockforge/cli/internal/errors"
)

// Exit codes. Every failure kind maps to its own non-zero status.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidName indicates an app or module name failed validation.
	ExitInvalidName = 2

	// ExitNameCollision indicates the module name is already taken.
	ExitNameCollision = 3

	// ExitAlreadyExists indicates a generation target file already exists.
	ExitAlreadyExists = 4

	// ExitPathUncreatable indicates a directory could not be created.
	ExitPathUncreatable = 5
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, serrors.ErrInvalidName):
		return ExitInvalidName
	case errors.Is(err, serrors.ErrNameCollision):
		return ExitNameCollision
	case errors.Is(err, serrors.ErrAlreadyExists):
		return ExitAlreadyExists
	case errors.Is(err, serrors.ErrPathUncreatable):
		return ExitPathUncreatable
	default:
		return ExitGeneralError
	}
}
