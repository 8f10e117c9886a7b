package shape

import "fmt"

// KindSquare is the variant tag of Square.
const KindSquare = "square"

// A Square is an axis-aligned square centered at the origin.
type Square struct {
	width float64
}

// NewSquare returns a square with the given side length.
func NewSquare(width float64) (Square, error) {
	if width <= 0 {
		return Square{}, ConstructionError{Kind: KindSquare, Field: "width", Value: width}
	}
	return Square{width: width}, nil
}

// Width returns the side length.
func (s Square) Width() float64 {
	return s.width
}

func (s Square) Kind() string {
	return KindSquare
}

func (s Square) String() string {
	return fmt.Sprintf("square(width=%v)", s.width)
}
