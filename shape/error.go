package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrNilShape a composite constructor or the codec received a nil child shape
	ErrNilShape = errors.New("shape: shape is nil")

	// ErrCodecMismatch a value was encoded through a codec registered for a different kind
	ErrCodecMismatch = errors.New("shape: value does not match registered kind")

	// ErrCodecRegistered a codec is already registered for the kind
	ErrCodecRegistered = errors.New("shape: codec already registered")

	// ErrCodecNil RegisterCodec received a nil encoder or decoder
	ErrCodecNil = errors.New("shape: codec is nil")
)

// ConstructionError reports an invalid argument supplied to a shape
// constructor or to a construction-like operation such as shrink.
type ConstructionError struct {
	Kind  string
	Field string
	Value float64
}

func (e ConstructionError) Error() string {
	return fmt.Sprintf("shape: %s %s must be positive, got %v", e.Kind, e.Field, e.Value)
}

// UnknownKindError reports a kind with no registered codec.
type UnknownKindError struct {
	Kind string
}

func (e UnknownKindError) Error() string {
	if e.Kind == "" {
		return "shape: missing kind"
	}
	return fmt.Sprintf("shape: no codec registered for kind %q", e.Kind)
}
