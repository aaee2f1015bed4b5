// Package pqueue defines the contract shared by the priority queues of this module.
//
// A queue only needs to report its length and provide the basic enqueue/dequeue operations (Queue). Changed and Last
// are optional capabilities: an implementation either provides them (Changer, LastPeeker) or declines them, in which
// case the helpers of this package report ErrUnsupported. Embedding Unsupported is a convenient way to decline both
// explicitly while still satisfying Full.
package pqueue

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupported = fmt.Errorf("pqueue: %w", errors.ErrUnsupported)
	ErrEmpty       = errors.New("pqueue: queue is empty")
)

type Sized interface {
	Len() int
}

type Queue[T any] interface {
	Sized
	Enqueue(T)
	Dequeue() (T, bool)
	First() (T, bool)
}

// Changer is implemented by queues able to restore their ordering after the value of the first element was modified in place.
type Changer interface {
	Changed() error
}

// LastPeeker is implemented by queues able to return the element that would be dequeued last.
type LastPeeker[T any] interface {
	Last() (T, error)
}

type Full[T any] interface {
	Queue[T]
	Changer
	LastPeeker[T]
	IsEmpty() bool
}

func IsEmpty(q Sized) bool {
	return q.Len() == 0
}

func Changed(q Sized) error {
	if c, ok := q.(Changer); ok {
		return c.Changed()
	}
	return ErrUnsupported
}

func Last[T any](q Queue[T]) (T, error) {
	if l, ok := q.(LastPeeker[T]); ok {
		return l.Last()
	}
	var zero T
	return zero, ErrUnsupported
}

// Unsupported declines the optional capabilities. Embed it to satisfy Full; methods of the embedding type take precedence.
type Unsupported[T any] struct{}

func (Unsupported[T]) Changed() error {
	return ErrUnsupported
}

func (Unsupported[T]) Last() (T, error) {
	var zero T
	return zero, ErrUnsupported
}

// Complete returns q as a Full queue, filling in whatever q does not implement.
func Complete[T any](q Queue[T]) Full[T] {
	if f, ok := q.(Full[T]); ok {
		return f
	}
	return completed[T]{q}
}

type completed[T any] struct {
	Queue[T]
}

func (c completed[T]) IsEmpty() bool    { return IsEmpty(c.Queue) }
func (c completed[T]) Changed() error   { return Changed(c.Queue) }
func (c completed[T]) Last() (T, error) { return Last(c.Queue) }
