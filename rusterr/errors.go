// Package rusterr defines the error taxonomy shared across the rasterization
// core: configuration mistakes, invalid input geometries/tables, and fatal
// internal errors. Every constructor wraps a category sentinel with %w so
// callers can classify an error with errors.Is regardless of the message.
package rusterr

import (
	"errors"
	"fmt"
)

// Category sentinels. Wrap one of these with %w via Config, Invalid, or
// Fatal rather than constructing errors ad hoc, so callers can dispatch on
// errors.Is(err, rusterr.ErrConfiguration) etc.
var (
	// ErrConfiguration marks a problem with how the caller set up a run:
	// missing both resolution and shape, an unknown reducer name, a field that
	// does not exist on the table, and similar setup mistakes.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidInput marks a problem with the data being rasterized itself:
	// an unsupported geometry kind, a table column of the wrong length, a
	// NaN where a finite value is required.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFatal marks a run that cannot produce a raster at all: no
	// supported geometry is left to rasterize, or no extent can be derived
	// from the geometries.
	ErrFatal = errors.New("fatal error")
)

// Config formats a message from format and args and wraps it as an
// ErrConfiguration.
func Config(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConfiguration)
}

// ConfigWrap wraps an existing error as an ErrConfiguration, preserving it
// for errors.Is/errors.As while prefixing context.
func ConfigWrap(context string, err error) error {
	return fmt.Errorf("%s: %w: %w", context, ErrConfiguration, err)
}

// Invalid wraps a formatted message as an ErrInvalidInput.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// InvalidWrap wraps an existing error as an ErrInvalidInput, preserving it
// for errors.Is/errors.As while prefixing context.
func InvalidWrap(context string, err error) error {
	return fmt.Errorf("%s: %w: %w", context, ErrInvalidInput, err)
}

// Fatal wraps a formatted message as an ErrFatal.
func Fatal(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrFatal)
}
