package ops

import (
	"github.com/go-leo/multimethod/dispatch"
	"github.com/go-leo/multimethod/shape"
)

// Shrink is the shrink-by-factor generic function.
var Shrink = dispatch.Define("shrink")

// ShrinkBy returns a copy of s with every intrinsic dimension divided by
// factor. Translation offsets are positions, not dimensions, and stay
// unchanged. The factor is validated before any variant implementation is
// selected, so an unregistered variant and a bad factor fail the same way
// for every shape.
func ShrinkBy(s shape.Shape, factor float64) (shape.Shape, error) {
	return dispatch.Call[shape.Shape](Shrink, s, factor)
}

// positiveFactor guards every shrink call, like an around method.
func positiveFactor(next dispatch.Invoker) dispatch.Invoker {
	return func(args ...any) (any, error) {
		if len(args) == 2 {
			if factor, ok := args[1].(float64); ok && factor <= 0 {
				return nil, shape.ConstructionError{Kind: "shrink", Field: "factor", Value: factor}
			}
		}
		return next(args...)
	}
}

func shrinkSquare(s shape.Square, factor float64) (shape.Shape, error) {
	return shape.NewSquare(s.Width() / factor)
}

func shrinkCircle(c shape.Circle, factor float64) (shape.Shape, error) {
	return shape.NewCircle(c.Radius() / factor)
}

func shrinkTranslated(t shape.Translated, factor float64) (shape.Shape, error) {
	child, err := ShrinkBy(t.Child(), factor)
	if err != nil {
		return nil, err
	}
	return shape.NewTranslated(child, t.Offset())
}

func shrinkUnion(u shape.Union, factor float64) (shape.Shape, error) {
	a, err := ShrinkBy(u.A(), factor)
	if err != nil {
		return nil, err
	}
	b, err := ShrinkBy(u.B(), factor)
	if err != nil {
		return nil, err
	}
	return shape.NewUnion(a, b)
}

func init() {
	Shrink.Use(positiveFactor)
	for _, impl := range []any{shrinkSquare, shrinkCircle, shrinkTranslated, shrinkUnion} {
		if err := Shrink.Register(impl); err != nil {
			panic(err)
		}
	}
}
