package shape

import "fmt"

// KindCircle is the variant tag of Circle.
const KindCircle = "circle"

// A Circle is a circle centered at the origin.
type Circle struct {
	radius float64
}

// NewCircle returns a circle with the given radius.
func NewCircle(radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, ConstructionError{Kind: KindCircle, Field: "radius", Value: radius}
	}
	return Circle{radius: radius}, nil
}

// Radius returns the radius.
func (c Circle) Radius() float64 {
	return c.radius
}

func (c Circle) Kind() string {
	return KindCircle
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(radius=%v)", c.radius)
}
