package radixsort

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortEmpty(t *testing.T) {
	assert.Equal(t, []int32{}, Sort(nil))
}

func TestSortSingle(t *testing.T) {
	assert.Equal(t, []int32{0}, Sort([]uint8{42}))
}

func TestSortIsNonDecreasing(t *testing.T) {
	pix := []uint8{5, 3, 3, 0, 255, 5, 1, 0, 0}
	indices := Sort(pix)
	assert.Len(t, indices, len(pix))

	seen := make([]bool, len(pix))
	prev := uint8(0)
	for i, idx := range indices {
		assert.False(t, seen[idx], "index %d repeated", idx)
		seen[idx] = true
		if i > 0 {
			assert.GreaterOrEqual(t, pix[idx], prev)
		}
		prev = pix[idx]
	}
}

func TestSortRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		n := r.Intn(500)
		pix := make([]uint8, n)
		for i := range pix {
			pix[i] = uint8(r.Intn(256))
		}
		indices := Sort(pix)
		assert.Len(t, indices, n)
		for i := 1; i < n; i++ {
			assert.LessOrEqual(t, pix[indices[i-1]], pix[indices[i]])
		}
	}
}
