package dispatch

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrImplementationNil Register received nil
	ErrImplementationNil = errors.New("dispatch: implementation is nil")

	// ErrNotFunction Register received a non-func value
	ErrNotFunction = errors.New("dispatch: implementation is not a function")

	// ErrBadSignature the func is variadic, takes no parameters, or does not
	// return a single result or a result and an error
	ErrBadSignature = errors.New("dispatch: implementation signature is not supported")

	// ErrSignatureMismatch the func's parameter count differs from earlier registrations
	ErrSignatureMismatch = errors.New("dispatch: implementation parameter count differs from earlier registrations")

	// ErrRegistered an implementation is already registered for the parameter types
	ErrRegistered = errors.New("dispatch: implementation registered")

	// ErrFunctionDefined the registry already holds a function with the name
	ErrFunctionDefined = errors.New("dispatch: function defined")

	// ErrArgNil Invoke received a nil argument, which has no runtime type to dispatch on
	ErrArgNil = errors.New("dispatch: argument is nil")
)

// NoApplicableError reports a call for whose argument types no
// implementation has been registered.
type NoApplicableError struct {
	Function string
	Types    []reflect.Type
}

func (e NoApplicableError) Error() string {
	return fmt.Sprintf("dispatch: no applicable implementation of %s for %s", e.Function, typeList(e.Types))
}

// AmbiguousError reports a call matched by several registrations of which
// none is strictly more specific than the others.
type AmbiguousError struct {
	Function   string
	Types      []reflect.Type
	Candidates []string
}

func (e AmbiguousError) Error() string {
	return fmt.Sprintf("dispatch: ambiguous call to %s for %s, candidates %s",
		e.Function, typeList(e.Types), strings.Join(e.Candidates, " and "))
}

// ConvertError reports a result that does not have the type Call was
// instantiated with.
type ConvertError struct {
	Res any
}

func (e ConvertError) Error() string {
	return fmt.Sprintf("dispatch: failed to convert result, %v", e.Res)
}

func typeList(types []reflect.Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
