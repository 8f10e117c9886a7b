package shape

import "fmt"

// KindUnion is the variant tag of Union.
const KindUnion = "union"

// A Union covers the set union of the regions of its two children.
type Union struct {
	a, b Shape
}

// NewUnion returns the union of a and b.
func NewUnion(a, b Shape) (Union, error) {
	if a == nil || b == nil {
		return Union{}, ErrNilShape
	}
	return Union{a: a, b: b}, nil
}

// A returns the first child.
func (u Union) A() Shape {
	return u.a
}

// B returns the second child.
func (u Union) B() Shape {
	return u.b
}

func (u Union) Kind() string {
	return KindUnion
}

func (u Union) String() string {
	return fmt.Sprintf("union(%s, %s)", u.a, u.b)
}
