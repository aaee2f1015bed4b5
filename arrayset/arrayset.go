package arrayset

import (
	"fmt"
	"hash/maphash"
	"iter"
	"slices"
	"strings"
)

// ArraySet is an unordered set of distinct values kept in a plain slice. Membership and removal scan the live elements
// linearly, which beats hashing only while the set stays small (tens of elements); in exchange there is no per-element
// bookkeeping beyond the slice itself. Removing an element moves the last live element into the freed slot, so the storage
// order seen by ForEach, All and Iterator is the insertion order only until the first removal.
// Elements are compared with ==, except that all values which are not equal to themselves (such as a float NaN, or a
// struct holding one) are treated as the same element.
// The zero value is an empty set ready to use. It is not safe to call any method concurrently from different goroutines.
type ArraySet[T comparable] struct {
	a   []T
	mod uint // structural version, see Iterator
}

func New[T comparable]() *ArraySet[T] {
	return &ArraySet[T]{}
}

func WithCapacity[T comparable](n int) *ArraySet[T] {
	if n < 0 {
		panic(fmt.Errorf("arrayset: invalid capacity %d", n))
	}
	return &ArraySet[T]{a: make([]T, 0, n)}
}

// Of returns a set holding the distinct values; for repeated values the first occurrence is kept.
func Of[T comparable](values ...T) *ArraySet[T] {
	s := WithCapacity[T](len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func FromSeq[T comparable](seq iter.Seq[T]) *ArraySet[T] {
	s := New[T]()
	for v := range seq {
		s.Add(v)
	}
	return s
}

// Wrap returns a set using values as its storage, without copying. The caller guarantees that values holds no duplicates;
// this is not checked and a violation breaks every operation of the returned set. The slice must not be used afterwards.
func Wrap[T comparable](values []T) *ArraySet[T] {
	return &ArraySet[T]{a: values}
}

// indexOf matches every self-unequal v against the first self-unequal element.
func indexOf[T comparable](values []T, v T) int {
	if v == v {
		return slices.Index(values, v)
	}
	return slices.IndexFunc(values, func(x T) bool { return x != x })
}

func (s *ArraySet[T]) live() []T {
	if s == nil {
		return nil
	}
	return s.a
}

func (s *ArraySet[T]) Len() int {
	return len(s.live())
}

func (s *ArraySet[T]) IsEmpty() bool {
	return s.Len() == 0
}

func (s *ArraySet[T]) Contains(v T) bool {
	return indexOf(s.live(), v) >= 0
}

func (s *ArraySet[T]) Add(v T) bool {
	if indexOf(s.a, v) >= 0 {
		return false
	}
	s.a = append(s.a, v)
	s.mod++
	return true
}

func (s *ArraySet[T]) Remove(v T) bool {
	i := indexOf(s.a, v)
	if i < 0 {
		return false
	}
	s.removeAt(i)
	return true
}

func (s *ArraySet[T]) removeAt(i int) {
	n := len(s.a) - 1
	if i != n {
		// take the last element and store it in place of the one being removed
		s.a[i] = s.a[n]
	}
	var zero T
	s.a[n] = zero
	s.a = s.a[:n]
	s.mod++
}

func (s *ArraySet[T]) Clear() {
	clear(s.a)
	s.a = s.a[:0]
	s.mod++
}

// ForEach calls fn for every element in storage order. fn must not modify the set.
func (s *ArraySet[T]) ForEach(fn func(T)) {
	for v := range s.All() {
		fn(v)
	}
}

// All returns a sequence of the elements in storage order. Modifying the set while ranging over it panics with
// an error wrapping ErrConcurrentModification; use Iterator or RemoveIf to remove elements during a scan.
func (s *ArraySet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		mod := s.mod
		for i := 0; i < len(s.a); i++ {
			if !yield(s.a[i]) {
				return
			}
			if s.mod != mod {
				panic(errConcurrentModification())
			}
		}
	}
}

// Values returns a copy of the live elements in storage order.
func (s *ArraySet[T]) Values() []T {
	return slices.Clone(s.live())
}

func (s *ArraySet[T]) Clone() *ArraySet[T] {
	return &ArraySet[T]{a: slices.Clone(s.live())}
}

// Equal reports whether s and o hold the same elements, regardless of their order. A nil set equals an empty one.
func (s *ArraySet[T]) Equal(o *ArraySet[T]) bool {
	if s == o {
		return true
	}
	if s.Len() != o.Len() {
		return false
	}
	for _, v := range s.live() {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// selfUnequalHash stands in for the hash of values which are not equal to themselves, whose maphash is random.
const selfUnequalHash = 0x9e3779b97f4a7c15

// Hash returns the sum of the element hashes, so that sets which are Equal hash equally under the same seed.
func (s *ArraySet[T]) Hash(seed maphash.Seed) uint64 {
	var h uint64
	for _, v := range s.live() {
		if v != v {
			h += selfUnequalHash
		} else {
			h += maphash.Comparable(seed, v)
		}
	}
	return h
}

func (s *ArraySet[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.live() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte('}')
	return b.String()
}
