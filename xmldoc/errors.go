package xmldoc

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDocument is returned when no document was supplied.
	ErrNilDocument = errors.New("xmldoc: document was nil")
	// ErrTransformation matches every *TransformationError.
	ErrTransformation = errors.New("xmldoc: transformation failed")
)

// TransformationError reports an engine that could not be instantiated,
// could not serialize a tree or could not be released.
type TransformationError struct {
	Op  string
	Err error
}

func (e *TransformationError) Error() string {
	return fmt.Sprintf("xmldoc: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the engine error.
func (e *TransformationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransformation.
func (e *TransformationError) Is(target error) bool {
	return target == ErrTransformation
}
