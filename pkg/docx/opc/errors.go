package opc

import (
	"errors"
	"fmt"
)

var (
	// ErrPartNotFound is returned when a part name is not in the package.
	ErrPartNotFound = errors.New("part not found")
	// ErrNoMainDocument is returned when no main document part can be found.
	ErrNoMainDocument = errors.New("package has no main document part")
	// ErrPartTooLarge is returned when a part exceeds Options.MaxPartSize.
	ErrPartTooLarge = errors.New("part exceeds maximum size")
)

// PackageError represents an error while reading or writing a package
type PackageError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *PackageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("package error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	}
	return fmt.Sprintf("package error during %s: %v", e.Operation, e.Cause)
}

func (e *PackageError) Unwrap() error {
	return e.Cause
}
