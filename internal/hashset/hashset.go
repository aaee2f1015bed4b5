// Package hashset is the map-backed counterpart of arrayset, with the same method names, used as a baseline when
// measuring where linear scanning stops paying off.
package hashset

import "iter"

type Set[T comparable] map[T]struct{}

func New[T comparable](capacity int) Set[T] {
	return Set[T](make(map[T]struct{}, capacity))
}

func (s Set[T]) Add(t T) bool {
	if s.Contains(t) {
		return false
	}
	s[t] = struct{}{}
	return true
}

func (s Set[T]) Remove(t T) bool {
	if !s.Contains(t) {
		return false
	}
	delete(s, t)
	return true
}

func (s Set[T]) Contains(t T) bool {
	_, ok := s[t]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range s {
			if !yield(t) {
				return
			}
		}
	}
}
