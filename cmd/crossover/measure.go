package main

import (
	"math/rand/v2"
	"time"

	"github.com/ddirect/compact/arrayset"
	"github.com/ddirect/compact/internal/hashset"
)

type Result struct {
	Size     int
	ArraySet float64 // ns per lookup
	HashSet  float64
}

const numKeys = 1024

var hits int

func Measure(size, lookups int, rnd *rand.Rand) Result {
	a := arrayset.WithCapacity[int](size)
	h := hashset.New[int](size)
	for i := range size {
		a.Add(i)
		h.Add(i)
	}

	// keys fall in [0, 2*size), so about half of the lookups miss
	keys := make([]int, numKeys)
	for i := range keys {
		keys[i] = rnd.IntN(2 * size)
	}

	return Result{
		Size:     size,
		ArraySet: nsPerLookup(a.Contains, keys, lookups),
		HashSet:  nsPerLookup(h.Contains, keys, lookups),
	}
}

func nsPerLookup(contains func(int) bool, keys []int, n int) float64 {
	start := time.Now()
	for i := range n {
		if contains(keys[i%len(keys)]) {
			hits++
		}
	}
	return float64(time.Since(start).Nanoseconds()) / float64(n)
}

// Crossover returns the smallest measured size from which on the hash set was faster for every larger size too.
func Crossover(results []Result) (int, bool) {
	size, found := 0, false
	for _, r := range results {
		if r.HashSet < r.ArraySet {
			if !found {
				size, found = r.Size, true
			}
		} else {
			found = false
		}
	}
	return size, found
}
