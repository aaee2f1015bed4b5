package marshaler

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// String stores the bytes of the string as they are.
var String = New(
	func(v string) ([]byte, error) { return []byte(v), nil },
	func(data []byte) (string, error) { return string(data), nil },
)

// Bool stores true as a single byte and false as nothing.
var Bool = New(
	func(v bool) ([]byte, error) {
		if v {
			return []byte{1}, nil
		}
		return nil, nil
	},
	func(data []byte) (bool, error) { return len(data) > 0, nil },
)

// Int64 stores a zigzag varint, so that small magnitudes of either sign take few bytes.
var Int64 = New(
	func(v int64) ([]byte, error) {
		return protowire.AppendVarint(nil, protowire.EncodeZigZag(v)), nil
	},
	func(data []byte) (int64, error) {
		u, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return 0, malformed(n)
		}
		if n != len(data) {
			return 0, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(data)-n)
		}
		return protowire.DecodeZigZag(u), nil
	},
)
