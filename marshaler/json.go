package marshaler

import "encoding/json"

func NewJSON[T any]() Codec[T] {
	return New(
		func(v T) ([]byte, error) { return json.Marshal(v) },
		func(data []byte) (v T, err error) {
			err = json.Unmarshal(data, &v)
			return
		},
	)
}
