package pqueue_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/ddirect/compact/pqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sorted keeps its elements in ascending order and implements nothing beyond Queue.
type sorted struct {
	s []int
}

func (q *sorted) Len() int { return len(q.s) }

func (q *sorted) Enqueue(v int) {
	i, _ := slices.BinarySearch(q.s, v)
	q.s = slices.Insert(q.s, i, v)
}

func (q *sorted) Dequeue() (v int, ok bool) {
	if v, ok = q.First(); ok {
		q.s = q.s[1:]
	}
	return
}

func (q *sorted) First() (v int, ok bool) {
	if len(q.s) > 0 {
		v, ok = q.s[0], true
	}
	return
}

// withLast adds the optional Last capability on top of sorted.
type withLast struct {
	sorted
}

func (q *withLast) Last() (int, error) {
	if len(q.s) == 0 {
		return 0, pqueue.ErrEmpty
	}
	return q.s[len(q.s)-1], nil
}

// declining explicitly opts out of both capabilities.
type declining struct {
	pqueue.Unsupported[int]
	sorted
}

func (q *declining) IsEmpty() bool { return pqueue.IsEmpty(q) }

func Test_Defaults(t *testing.T) {
	q := &sorted{}
	assert.True(t, pqueue.IsEmpty(q))
	q.Enqueue(2)
	q.Enqueue(1)
	assert.False(t, pqueue.IsEmpty(q))

	assert.ErrorIs(t, pqueue.Changed(q), pqueue.ErrUnsupported)
	assert.True(t, errors.Is(pqueue.Changed(q), errors.ErrUnsupported))

	_, err := pqueue.Last[int](q)
	assert.ErrorIs(t, err, pqueue.ErrUnsupported)
}

func Test_Complete(t *testing.T) {
	t.Run("fills in missing capabilities", func(t *testing.T) {
		f := pqueue.Complete[int](&sorted{})
		assert.True(t, f.IsEmpty())
		f.Enqueue(3)
		f.Enqueue(1)
		assert.False(t, f.IsEmpty())
		assert.Equal(t, 2, f.Len())

		assert.ErrorIs(t, f.Changed(), pqueue.ErrUnsupported)
		_, err := f.Last()
		assert.ErrorIs(t, err, pqueue.ErrUnsupported)

		v, ok := f.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, 1, v)
	})

	t.Run("forwards implemented capabilities", func(t *testing.T) {
		f := pqueue.Complete[int](&withLast{})
		_, err := f.Last()
		assert.ErrorIs(t, err, pqueue.ErrEmpty)

		f.Enqueue(4)
		f.Enqueue(9)
		f.Enqueue(6)
		last, err := f.Last()
		require.NoError(t, err)
		assert.Equal(t, 9, last)
		assert.ErrorIs(t, f.Changed(), pqueue.ErrUnsupported)
	})

	t.Run("returns full queues unchanged", func(t *testing.T) {
		q := &declining{}
		assert.Same(t, q, pqueue.Complete[int](q))
		assert.ErrorIs(t, q.Changed(), pqueue.ErrUnsupported)
		_, err := q.Last()
		assert.ErrorIs(t, err, pqueue.ErrUnsupported)
		assert.True(t, q.IsEmpty())
	})
}
