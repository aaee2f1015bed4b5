package marshaler

import (
	"errors"
	"fmt"

	"github.com/ddirect/compact/arrayset"
	"google.golang.org/protobuf/encoding/protowire"
)

// elementsField is the field number of the elements in the set encoding; the layout is that of the message
//
//	message ArraySet { repeated bytes elements = 1; }
const elementsField protowire.Number = 1

var ErrMalformed = errors.New("marshaler: malformed encoding")

// NewArraySet returns a marshaler for whole sets, encoding each element with elem. Decoding collapses repeated
// elements and skips unknown fields.
func NewArraySet[T comparable](elem Marshaler[T]) Marshaler[*arrayset.ArraySet[T]] {
	return New(
		func(s *arrayset.ArraySet[T]) ([]byte, error) {
			var data []byte
			for v := range s.All() {
				e, err := elem.Marshal(v)
				if err != nil {
					return nil, err
				}
				data = protowire.AppendTag(data, elementsField, protowire.BytesType)
				data = protowire.AppendBytes(data, e)
			}
			return data, nil
		},
		func(data []byte) (*arrayset.ArraySet[T], error) {
			s := arrayset.New[T]()
			for len(data) > 0 {
				num, typ, n := protowire.ConsumeTag(data)
				if n < 0 {
					return nil, malformed(n)
				}
				data = data[n:]

				if num != elementsField || typ != protowire.BytesType {
					if n = protowire.ConsumeFieldValue(num, typ, data); n < 0 {
						return nil, malformed(n)
					}
					data = data[n:]
					continue
				}

				e, n := protowire.ConsumeBytes(data)
				if n < 0 {
					return nil, malformed(n)
				}
				data = data[n:]

				v, err := elem.Unmarshal(e)
				if err != nil {
					return nil, err
				}
				s.Add(v)
			}
			return s, nil
		},
	)
}

func malformed(n int) error {
	return fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
}
