// Package ops defines the geometric operations over the shape variants.
//
// Each operation is a generic function from the dispatch package with one
// implementation per variant. The two extension axes stay independent:
// a new variant joins an operation by registering against it, and a new
// operation is a new generic function registered against whichever
// variants it supports, neither touching the shape package nor the other
// operations.
package ops

import (
	"math"

	"github.com/go-leo/multimethod/dispatch"
	"github.com/go-leo/multimethod/geom"
	"github.com/go-leo/multimethod/shape"
)

// PointIn is the containment generic function. Downstream variants
// register their implementations on it.
var PointIn = dispatch.Define("point-in")

// Contains reports whether p lies strictly inside s. Regions are open
// sets: a point exactly on a boundary is outside.
func Contains(p geom.Point, s shape.Shape) (bool, error) {
	return dispatch.Call[bool](PointIn, p, s)
}

func squareContains(p geom.Point, s shape.Square) bool {
	half := s.Width() / 2
	return math.Abs(p.X) < half && math.Abs(p.Y) < half
}

func circleContains(p geom.Point, c shape.Circle) bool {
	return p.Norm() < c.Radius()
}

func translatedContains(p geom.Point, t shape.Translated) (bool, error) {
	return Contains(p.Sub(t.Offset()), t.Child())
}

func unionContains(p geom.Point, u shape.Union) (bool, error) {
	in, err := Contains(p, u.A())
	if err != nil {
		return false, err
	}
	if in {
		return true, nil
	}
	return Contains(p, u.B())
}

func init() {
	for _, impl := range []any{squareContains, circleContains, translatedContains, unionContains} {
		if err := PointIn.Register(impl); err != nil {
			panic(err)
		}
	}
}
