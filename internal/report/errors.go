package report

import (
	"errors"
	"fmt"
)

var (
	// ErrGeneration is returned when the generation backend fails.
	ErrGeneration = errors.New("generation failed")
	// ErrExport is returned when an artifact cannot be serialized.
	ErrExport = errors.New("export failed")
	// ErrNoProjectName is returned in strict-title mode when the generated
	// text has no project-name heading; exports stay blocked until the user
	// regenerates with a conforming template or fills in the title field.
	ErrNoProjectName = errors.New("no project name heading in generated text")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
