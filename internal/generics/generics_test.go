package generics

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"max_time": 1, "ab": 5, "opening": 3}
	// Since the builtin map iterator in Go is deliberately non-deterministic, we
	// run it a bunch of times to show it is stably sorted.
	want := []string{"ab", "max_time", "opening"}
	for range 100 {
		got := slices.Collect(SortedKeys(m))
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestSet(t *testing.T) {
	s := MakeSet[int](10)
	assert.Len(t, s, 0)
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := SetWith(5, 7, 5)
	assert.Len(t, s2, 2)
	assert.True(t, s2.Has(5))
}

func TestSliceMap(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, SliceMap([]int{1, 2, 3}, func(e int) int { return 2 * e }))
}

func TestSliceOrdering(t *testing.T) {
	s := []float32{7, -3, 2}
	assert.Equal(t, []int{1, 2, 0}, SliceOrdering(s, false))
	s2 := []int64{0, 1, 2}
	assert.Equal(t, []int{2, 1, 0}, SliceOrdering(s2, true))

	// Ties keep the original order, in both directions.
	s3 := []float32{1, 5, 1, 5, 3}
	assert.Equal(t, []int{1, 3, 4, 0, 2}, SliceOrdering(s3, true))
	assert.Equal(t, []int{0, 2, 4, 1, 3}, SliceOrdering(s3, false))
}
