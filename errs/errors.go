// Package errs defines the sentinel errors returned by hellomath packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should match them with errors.Is.
package errs

import "errors"

var (
	// ErrInsufficientData is returned when a statistic cannot be computed from
	// the current number of samples or their spread.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrMismatchedLength is returned when paired inputs have different lengths.
	ErrMismatchedLength = errors.New("mismatched input lengths")

	// ErrInvalidArgument is returned when an argument is outside its valid range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidDataset is returned when a dataset source cannot be parsed.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
