package ops

import (
	"math"

	"github.com/go-leo/multimethod/dispatch"
	"github.com/go-leo/multimethod/shape"
)

// Area is the covered-area generic function.
//
// It is deliberately not registered for Union: the union's area depends on
// how much its children overlap, which the shape tree does not know.
// Calling AreaOf on a union therefore fails with a NoApplicableError, the
// normal outcome for a variant an operation does not support.
var Area = dispatch.Define("area")

// AreaOf returns the area of the region covered by s.
func AreaOf(s shape.Shape) (float64, error) {
	return dispatch.Call[float64](Area, s)
}

func squareArea(s shape.Square) float64 {
	return s.Width() * s.Width()
}

func circleArea(c shape.Circle) float64 {
	return math.Pi * c.Radius() * c.Radius()
}

func translatedArea(t shape.Translated) (float64, error) {
	return AreaOf(t.Child())
}

func init() {
	for _, impl := range []any{squareArea, circleArea, translatedArea} {
		if err := Area.Register(impl); err != nil {
			panic(err)
		}
	}
}
