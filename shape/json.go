package shape

import (
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-leo/multimethod/geom"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodeFunc converts a shape of one kind into its JSON payload value. The
// payload must carry the "kind" field so that Unmarshal can route it back.
type EncodeFunc func(Shape) (any, error)

// DecodeFunc rebuilds a shape from the JSON envelope of its kind. Decoders
// go through the ordinary constructors, so invalid payloads fail with the
// same ConstructionError the constructors raise.
type DecodeFunc func([]byte) (Shape, error)

type codec struct {
	encode EncodeFunc
	decode DecodeFunc
}

// codecs is populated during package initialization and by downstream
// variants at their own init time; it is read-only once encoding begins.
var codecs sync.Map

// RegisterCodec adds the JSON codec of a new variant. Like operation
// registration, it extends the library without touching existing variants.
func RegisterCodec(kind string, enc EncodeFunc, dec DecodeFunc) error {
	if enc == nil || dec == nil {
		return ErrCodecNil
	}
	if _, loaded := codecs.LoadOrStore(kind, codec{encode: enc, decode: dec}); loaded {
		return ErrCodecRegistered
	}
	return nil
}

// Marshal encodes s as a JSON envelope discriminated by its kind.
func Marshal(s Shape) ([]byte, error) {
	if s == nil {
		return nil, ErrNilShape
	}
	value, ok := codecs.Load(s.Kind())
	if !ok {
		return nil, UnknownKindError{Kind: s.Kind()}
	}
	payload, err := value.(codec).encode(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(payload)
}

// Unmarshal decodes the JSON envelope produced by Marshal.
func Unmarshal(data []byte) (Shape, error) {
	kind := jsoniter.Get(data, "kind").ToString()
	value, ok := codecs.Load(kind)
	if !ok {
		return nil, UnknownKindError{Kind: kind}
	}
	return value.(codec).decode(data)
}

type squareJSON struct {
	Kind  string  `json:"kind"`
	Width float64 `json:"width"`
}

type circleJSON struct {
	Kind   string  `json:"kind"`
	Radius float64 `json:"radius"`
}

type translatedJSON struct {
	Kind  string              `json:"kind"`
	X     float64             `json:"x"`
	Y     float64             `json:"y"`
	Child jsoniter.RawMessage `json:"child"`
}

type unionJSON struct {
	Kind string              `json:"kind"`
	A    jsoniter.RawMessage `json:"a"`
	B    jsoniter.RawMessage `json:"b"`
}

func encodeSquare(s Shape) (any, error) {
	sq, ok := s.(Square)
	if !ok {
		return nil, ErrCodecMismatch
	}
	return squareJSON{Kind: KindSquare, Width: sq.Width()}, nil
}

func decodeSquare(data []byte) (Shape, error) {
	var payload squareJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return NewSquare(payload.Width)
}

func encodeCircle(s Shape) (any, error) {
	c, ok := s.(Circle)
	if !ok {
		return nil, ErrCodecMismatch
	}
	return circleJSON{Kind: KindCircle, Radius: c.Radius()}, nil
}

func decodeCircle(data []byte) (Shape, error) {
	var payload circleJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return NewCircle(payload.Radius)
}

func encodeTranslated(s Shape) (any, error) {
	t, ok := s.(Translated)
	if !ok {
		return nil, ErrCodecMismatch
	}
	child, err := Marshal(t.Child())
	if err != nil {
		return nil, err
	}
	offset := t.Offset()
	return translatedJSON{Kind: KindTranslated, X: offset.X, Y: offset.Y, Child: child}, nil
}

func decodeTranslated(data []byte) (Shape, error) {
	var payload translatedJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	child, err := Unmarshal(payload.Child)
	if err != nil {
		return nil, err
	}
	return NewTranslated(child, geom.Pt(payload.X, payload.Y))
}

func encodeUnion(s Shape) (any, error) {
	u, ok := s.(Union)
	if !ok {
		return nil, ErrCodecMismatch
	}
	a, err := Marshal(u.A())
	if err != nil {
		return nil, err
	}
	b, err := Marshal(u.B())
	if err != nil {
		return nil, err
	}
	return unionJSON{Kind: KindUnion, A: a, B: b}, nil
}

func decodeUnion(data []byte) (Shape, error) {
	var payload unionJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	a, err := Unmarshal(payload.A)
	if err != nil {
		return nil, err
	}
	b, err := Unmarshal(payload.B)
	if err != nil {
		return nil, err
	}
	return NewUnion(a, b)
}

func init() {
	_ = RegisterCodec(KindSquare, encodeSquare, decodeSquare)
	_ = RegisterCodec(KindCircle, encodeCircle, decodeCircle)
	_ = RegisterCodec(KindTranslated, encodeTranslated, decodeTranslated)
	_ = RegisterCodec(KindUnion, encodeUnion, decodeUnion)
}
