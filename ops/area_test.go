package ops

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/multimethod/dispatch"
	"github.com/go-leo/multimethod/geom"
	"github.com/go-leo/multimethod/shape"
)

func TestAreaOf(t *testing.T) {
	area, err := AreaOf(mustSquare(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 9.0, area)

	area, err = AreaOf(mustCircle(t, 2))
	require.NoError(t, err)
	assert.Equal(t, 4*math.Pi, area)

	area, err = AreaOf(mustTranslated(t, mustSquare(t, 3), geom.Pt(5, 5)))
	require.NoError(t, err)
	assert.Equal(t, 9.0, area)
}

// Area is not registered for unions, so the call fails with the operation
// and the variant named, while squares and circles keep working.
func TestAreaOfUnion(t *testing.T) {
	u := mustUnion(t, mustSquare(t, 2), mustCircle(t, 1))

	_, err := AreaOf(u)
	var nerr dispatch.NoApplicableError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "area", nerr.Function)
	require.Len(t, nerr.Types, 1)
	assert.Equal(t, reflect.TypeOf(shape.Union{}), nerr.Types[0])

	area, err := AreaOf(mustSquare(t, 2))
	require.NoError(t, err)
	assert.Equal(t, 4.0, area)
}

func TestOperationsDefined(t *testing.T) {
	for _, name := range []string{"area", "point-in", "shrink"} {
		fn, ok := dispatch.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, fn.Name())
	}
}
