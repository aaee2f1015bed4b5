// Package marshaler converts values, including whole sets, to and from bytes so that they can be handed to any
// storage or transport chosen by the caller.
package marshaler

// Marshaler encodes values of type T and decodes them back. Unmarshal(Marshal(v)) yields a value equal to v.
type Marshaler[T any] interface {
	Marshal(T) ([]byte, error)
	Unmarshal([]byte) (T, error)
}

// Codec is a Marshaler made of a pair of functions.
type Codec[T any] struct {
	Encode func(T) ([]byte, error)
	Decode func([]byte) (T, error)
}

func New[T any](encode func(T) ([]byte, error), decode func([]byte) (T, error)) Codec[T] {
	return Codec[T]{Encode: encode, Decode: decode}
}

func (c Codec[T]) Marshal(v T) ([]byte, error)      { return c.Encode(v) }
func (c Codec[T]) Unmarshal(data []byte) (T, error) { return c.Decode(data) }
