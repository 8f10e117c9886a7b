package shape

import (
	"fmt"

	"github.com/go-leo/multimethod/geom"
)

// KindTranslated is the variant tag of Translated.
const KindTranslated = "translated"

// A Translated is a child shape moved by a fixed offset. The child is held
// as-is; because shapes are immutable it may be shared with other parents.
type Translated struct {
	child  Shape
	offset geom.Point
}

// NewTranslated returns child moved by offset.
func NewTranslated(child Shape, offset geom.Point) (Translated, error) {
	if child == nil {
		return Translated{}, ErrNilShape
	}
	return Translated{child: child, offset: offset}, nil
}

// Child returns the wrapped shape.
func (t Translated) Child() Shape {
	return t.child
}

// Offset returns the translation offset.
func (t Translated) Offset() geom.Point {
	return t.offset
}

func (t Translated) Kind() string {
	return KindTranslated
}

func (t Translated) String() string {
	return fmt.Sprintf("translated(%s, by=%s)", t.child, t.offset)
}
