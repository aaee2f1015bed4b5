package hashset_test

import (
	"slices"
	"testing"

	"github.com/ddirect/compact/arrayset"
	"github.com/ddirect/compact/internal/hashset"
	"github.com/stretchr/testify/assert"
)

func Test_Basic(t *testing.T) {
	s := hashset.New[int](4)
	assert.True(t, s.Add(1))
	assert.True(t, s.Add(2))
	assert.False(t, s.Add(1))
	assert.True(t, s.Contains(2))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Remove(3))
	assert.True(t, s.Remove(2))
	assert.False(t, s.Contains(2))
	assert.Equal(t, []int{1}, slices.Collect(s.All()))
}

func Test_ArraySetInterop(t *testing.T) {
	h := hashset.New[int](0)
	for _, v := range []int{1, 3, 5} {
		h.Add(v)
	}

	a := arrayset.Of(0, 1, 2, 3, 4, 5)
	assert.True(t, a.RemoveAll(h.All()))
	assert.True(t, arrayset.Of(0, 2, 4).Equal(a))

	a = arrayset.FromSeq(h.All())
	assert.True(t, arrayset.Of(5, 3, 1).Equal(a))
	assert.True(t, a.RetainAll(slices.Values([]int{3})))
	assert.Equal(t, []int{3}, a.Values())
}
