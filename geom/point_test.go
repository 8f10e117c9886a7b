package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	assert.Equal(t, Pt(4, 2), p.Add(q))
	assert.Equal(t, Pt(2, 6), p.Sub(q))
	assert.Equal(t, Pt(6, 8), p.Mul(2))
	assert.Equal(t, 5.0, p.Norm())
}

func TestPointValueSemantics(t *testing.T) {
	p := Pt(1, 1)
	q := p
	q.X = 9

	assert.Equal(t, Pt(1, 1), p)
	assert.True(t, p == Pt(1, 1))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1.5,-2)", Pt(1.5, -2).String())
}
