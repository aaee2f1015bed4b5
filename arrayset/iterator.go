package arrayset

import (
	"errors"
	"fmt"
)

var (
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrIllegalState           = errors.New("illegal iterator state")
)

func errConcurrentModification() error {
	return fmt.Errorf("arrayset: %w", ErrConcurrentModification)
}

// Iterator is a single-pass cursor over the elements of an ArraySet:
//
//	for it := s.Iterator(); it.Next(); {
//		if drop(it.Value()) {
//			it.Remove()
//		}
//	}
//
// Any structural change to the set which is not made through the iterator's own Remove is detected by the
// following call and reported by panicking with an error wrapping ErrConcurrentModification.
type Iterator[T comparable] struct {
	s    *ArraySet[T]
	next int // index of the element returned by the following Next
	last int // index of the current element, -1 if there is none
	mod  uint
}

func (s *ArraySet[T]) Iterator() *Iterator[T] {
	if s == nil {
		s = &ArraySet[T]{}
	}
	return &Iterator[T]{
		s:    s,
		last: -1,
		mod:  s.mod,
	}
}

func (it *Iterator[T]) check() {
	if it.mod != it.s.mod {
		panic(errConcurrentModification())
	}
}

func (it *Iterator[T]) current(op string) int {
	it.check()
	if it.last < 0 {
		panic(fmt.Errorf("arrayset: %w: %s without a current element", ErrIllegalState, op))
	}
	return it.last
}

func (it *Iterator[T]) Next() bool {
	it.check()
	if it.next >= len(it.s.a) {
		it.last = -1
		return false
	}
	it.last = it.next
	it.next++
	return true
}

func (it *Iterator[T]) Value() T {
	return it.s.a[it.current("Value")]
}

// Remove removes the current element from the set. The element which was last in storage takes its slot and is
// returned by the following Next, so no element is skipped or visited twice.
func (it *Iterator[T]) Remove() {
	i := it.current("Remove")
	it.s.removeAt(i)
	it.next = i
	it.last = -1
	it.mod = it.s.mod
}
