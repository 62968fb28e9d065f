package rowqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeRowIntoEmpty(t *testing.T) {
	g := New(2, 3)
	g.MergeRow(0, 1, []int32{2, 5, 9})
	assert.Equal(t, []int32{2, 5, 9}, g.Row(0, 1))
	assert.Empty(t, g.Row(1, 1))
}

func TestMergeRowInterleaves(t *testing.T) {
	g := New(1, 1)
	g.MergeRow(0, 0, []int32{1, 4, 7})
	g.MergeRow(0, 0, []int32{0, 2, 5, 8})
	assert.Equal(t, []int32{0, 1, 2, 4, 5, 7, 8}, g.Row(0, 0))
}

func TestClearThenMergeReuses(t *testing.T) {
	g := New(1, 1)
	g.MergeRow(0, 0, []int32{1, 2, 3})
	g.Clear(0, 0)
	assert.Empty(t, g.Row(0, 0))
	g.MergeRow(0, 0, []int32{4, 5})
	assert.Equal(t, []int32{4, 5}, g.Row(0, 0))
}
