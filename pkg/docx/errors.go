package docx

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument is returned when a parsed document part lacks
	// structure the typed API depends on, such as the w:body element.
	ErrMalformedDocument = errors.New("malformed document structure")
	// ErrInvalidPart is returned when a part is constructed without a part
	// name or content type.
	ErrInvalidPart = errors.New("invalid part")
)

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	PartName  string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.PartName != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.PartName, e.Cause)
	} else if e.PartName != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.PartName)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, partName string, cause error) error {
	return &DocumentError{
		Operation: operation,
		PartName:  partName,
		Cause:     cause,
	}
}
