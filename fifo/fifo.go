package fifo

import "github.com/ddirect/compact/pqueue"

// Fifo is a first-in first-out queue. Its order does not depend on the values, so Changed is declined.
type Fifo[T any] struct {
	pqueue.Unsupported[T]
	s []T
}

var _ pqueue.Full[int] = (*Fifo[int])(nil)

func (f *Fifo[T]) Enqueue(t T) {
	f.s = append(f.s, t)
}

func (f *Fifo[T]) Dequeue() (t T, ok bool) {
	if len(f.s) > 0 {
		t = f.s[0]
		var zero T
		f.s[0] = zero
		f.s = f.s[1:]
		ok = true
	}
	return
}

func (f *Fifo[T]) First() (t T, ok bool) {
	if len(f.s) > 0 {
		t, ok = f.s[0], true
	}
	return
}

// Last returns the most recently enqueued element, which is the one dequeued last.
func (f *Fifo[T]) Last() (t T, err error) {
	if len(f.s) == 0 {
		return t, pqueue.ErrEmpty
	}
	return f.s[len(f.s)-1], nil
}

func (f *Fifo[T]) Len() int {
	return len(f.s)
}

func (f *Fifo[T]) IsEmpty() bool {
	return pqueue.IsEmpty(f)
}

func (f *Fifo[T]) Clear() {
	clear(f.s)
	f.s = nil
}
