package shape

import (
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/multimethod/geom"
)

func TestMarshalSquare(t *testing.T) {
	s, err := NewSquare(2)
	require.NoError(t, err)

	data, err := Marshal(s)
	require.NoError(t, err)
	jsonassert.New(t).Assertf(string(data), `{"kind": "square", "width": 2}`)
}

func TestMarshalNested(t *testing.T) {
	c, err := NewCircle(1)
	require.NoError(t, err)
	tr, err := NewTranslated(c, geom.Pt(3, -4))
	require.NoError(t, err)
	s, err := NewSquare(2)
	require.NoError(t, err)
	u, err := NewUnion(s, tr)
	require.NoError(t, err)

	data, err := Marshal(u)
	require.NoError(t, err)
	jsonassert.New(t).Assertf(string(data), `{
		"kind": "union",
		"a": {"kind": "square", "width": 2},
		"b": {"kind": "translated", "x": 3, "y": -4, "child": {"kind": "circle", "radius": 1}}
	}`)
}

func TestUnmarshalRoundTrip(t *testing.T) {
	c, err := NewCircle(1)
	require.NoError(t, err)
	tr, err := NewTranslated(c, geom.Pt(3, -4))
	require.NoError(t, err)
	s, err := NewSquare(2)
	require.NoError(t, err)
	u, err := NewUnion(tr, s)
	require.NoError(t, err)

	data, err := Marshal(u)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, u, decoded)
}

func TestUnmarshalUnknownKind(t *testing.T) {
	_, err := Unmarshal([]byte(`{"kind": "pentagon", "sides": 5}`))
	var kerr UnknownKindError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "pentagon", kerr.Kind)
}

func TestUnmarshalMissingKind(t *testing.T) {
	_, err := Unmarshal([]byte(`{"width": 2}`))
	var kerr UnknownKindError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "shape: missing kind", kerr.Error())
}

// Decoders run the constructors, so a payload that could not have been
// produced by Marshal fails construction rather than yielding a bad shape.
func TestUnmarshalInvalidPayload(t *testing.T) {
	_, err := Unmarshal([]byte(`{"kind": "circle", "radius": -1}`))
	var cerr ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindCircle, cerr.Kind)
}

func TestMarshalNil(t *testing.T) {
	_, err := Marshal(nil)
	assert.ErrorIs(t, err, ErrNilShape)
}

func TestRegisterCodec(t *testing.T) {
	err := RegisterCodec(KindSquare, encodeSquare, decodeSquare)
	assert.ErrorIs(t, err, ErrCodecRegistered)

	err = RegisterCodec("pentagon", nil, nil)
	assert.ErrorIs(t, err, ErrCodecNil)
}
