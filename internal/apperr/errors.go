// Package apperr defines the error kinds surfaced by mwpack and the process
// exit codes they map to.
//
// Errors are classified by wrapping one of the sentinels below with %w, so
// callers anywhere in the stack can test the kind with [errors.Is] without
// caring about the message.
package apperr

import (
	"errors"
	"fmt"
)

// Exit codes returned by the mwpack binary.
const (
	ExitOK              = 0
	ExitValidation      = 2
	ExitInternal        = 3
	ExitRendererMissing = 4
)

var (
	// ErrValidation marks malformed input: bad config, bad paths, bad flags.
	ErrValidation = errors.New("validation error")

	// ErrInvariant marks an internal invariant violation. It is a defect,
	// not a user error.
	ErrInvariant = errors.New("invariant violated")

	// ErrRendererMissing marks a render that fell back because pandoc is
	// not installed.
	ErrRendererMissing = errors.New("renderer missing")
)

// Validationf returns a validation error with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Validation wraps err as a validation error. A nil err yields nil.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// Invariantf returns an invariant violation with a formatted message.
func Invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrValidation):
		return ExitValidation
	case errors.Is(err, ErrRendererMissing):
		return ExitRendererMissing
	default:
		return ExitInternal
	}
}
