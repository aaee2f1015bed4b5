package arrayset

import "encoding/json"

// MarshalJSON encodes the set as a JSON array of its elements in storage order.
func (s *ArraySet[T]) MarshalJSON() ([]byte, error) {
	values := s.live()
	if values == nil {
		values = []T{}
	}
	return json.Marshal(values)
}

// UnmarshalJSON replaces the contents of s with the elements of a JSON array. Repeated elements are collapsed.
func (s *ArraySet[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.Clear()
	for _, v := range values {
		s.Add(v)
	}
	return nil
}
