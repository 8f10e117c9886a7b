package dispatch

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-leo/gox/errorx"
)

// method is one registered implementation: a func value plus the
// parameter-type tuple it dispatches on.
type method struct {
	fn   reflect.Value
	in   []reflect.Type
	outs int
}

func newMethod(impl any) (*method, error) {
	if impl == nil {
		return nil, ErrImplementationNil
	}
	fnVal := reflect.ValueOf(impl)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return nil, ErrNotFunction
	}
	if fnType.IsVariadic() || fnType.NumIn() < 1 {
		return nil, ErrBadSignature
	}
	switch fnType.NumOut() {
	case 1:
	case 2:
		if !fnType.Out(1).Implements(errorx.ErrorType) {
			return nil, ErrBadSignature
		}
	default:
		return nil, ErrBadSignature
	}
	in := make([]reflect.Type, fnType.NumIn())
	for i := range in {
		in[i] = fnType.In(i)
	}
	return &method{fn: fnVal, in: in, outs: fnType.NumOut()}, nil
}

// applicable reports whether the method accepts arguments of the given
// concrete types.
func (m *method) applicable(types []reflect.Type) bool {
	if len(types) != len(m.in) {
		return false
	}
	for i, param := range m.in {
		if !applies(types[i], param) {
			return false
		}
	}
	return true
}

// moreSpecific reports whether m is strictly more specific than o: every
// parameter of m satisfies the corresponding parameter of o, and at least
// one is strictly narrower. Parameter tuples that only differ in
// incomparable positions are neither more nor less specific, which Invoke
// surfaces as an ambiguity.
func (m *method) moreSpecific(o *method) bool {
	narrower := false
	for i, param := range m.in {
		other := o.in[i]
		if param == other {
			continue
		}
		if !applies(param, other) {
			return false
		}
		narrower = true
	}
	return narrower
}

// applies reports whether a value typed t can be dispatched to a parameter
// of type param.
func applies(t, param reflect.Type) bool {
	if t == param {
		return true
	}
	return param.Kind() == reflect.Interface && t.Implements(param)
}

func (m *method) call(args []any) (any, error) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}
	out := m.fn.Call(in)
	if m.outs == 2 {
		if err := out[1].Interface(); err != nil {
			return out[0].Interface(), err.(error)
		}
	}
	return out[0].Interface(), nil
}

func (m *method) signature() string {
	params := make([]string, len(m.in))
	for i, in := range m.in {
		params[i] = in.String()
	}
	return fmt.Sprintf("func(%s)", strings.Join(params, ", "))
}
