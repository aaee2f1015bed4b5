package arrayset

import (
	"iter"
	"slices"
)

func (s *ArraySet[T]) AddAll(values iter.Seq[T]) bool {
	added := false
	for _, v := range slices.Collect(values) {
		if s.Add(v) {
			added = true
		}
	}
	return added
}

func (s *ArraySet[T]) ContainsAll(values iter.Seq[T]) bool {
	for v := range values {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// RemoveIf removes every element for which pred returns true and reports whether any was removed.
// pred must not modify the set.
func (s *ArraySet[T]) RemoveIf(pred func(T) bool) bool {
	removed := false
	for i := 0; i < len(s.a); {
		if pred(s.a[i]) {
			// the slot now holds the former last element, which has not been examined yet
			s.removeAt(i)
			removed = true
		} else {
			i++
		}
	}
	return removed
}

// RemoveAll collects values before s is touched, which keeps arguments derived from s itself (such as s.All()) valid.
// The same holds for RetainAll.
func (s *ArraySet[T]) RemoveAll(values iter.Seq[T]) bool {
	other := FromSeq(values)
	return s.RemoveIf(other.Contains)
}

func (s *ArraySet[T]) RetainAll(values iter.Seq[T]) bool {
	other := FromSeq(values)
	return s.RemoveIf(func(v T) bool {
		return !other.Contains(v)
	})
}
