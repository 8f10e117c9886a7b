package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefine(t *testing.T) {
	r := NewRegistry()

	fn, err := r.Define("point-in")
	require.NoError(t, err)
	assert.Equal(t, "point-in", fn.Name())

	_, err = r.Define("point-in")
	assert.ErrorIs(t, err, ErrFunctionDefined)

	got, ok := r.Lookup("point-in")
	require.True(t, ok)
	assert.Equal(t, fn, got)

	_, ok = r.Lookup("area")
	assert.False(t, ok)

	_, err = r.Define("shrink")
	require.NoError(t, err)
	assert.Equal(t, []string{"point-in", "shrink"}, r.Functions())
}

func TestGlobalRegistry(t *testing.T) {
	old := SetRegistry(NewRegistry())
	defer SetRegistry(old)

	fn := Define("area")
	got, ok := Lookup("area")
	require.True(t, ok)
	assert.Equal(t, fn, got)

	_, ok = Lookup("perimeter")
	assert.False(t, ok)

	assert.Panics(t, func() { Define("area") })
}
