package generics

import (
	"github.com/stretchr/testify/assert"
	"slices"
	"strconv"
	"testing"
)

func TestSliceMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, SliceMap([]int{1, 2, 3}, strconv.Itoa))
	assert.Empty(t, SliceMap([]int{}, strconv.Itoa))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"max_depth": 1, "seed": 5, "randomness": 3}
	// Since the builtin map iterator in Go is deliberately non-deterministic, we
	// run it a bunch of times to show it is stably sorted.
	want := []string{"max_depth", "randomness", "seed"}
	for range 100 {
		got := slices.Collect(SortedKeys(m))
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := SetWith(5, 7, 7)
	assert.Len(t, s2, 2)
	assert.True(t, s2.Has(5))
	assert.False(t, s2.Has(3))
}
