package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortedIndices(pix []uint8) []int32 {
	idx := make([]int32, len(pix))
	for i := range idx {
		idx[i] = int32(i)
	}
	// Stable sort by value, mirroring internal/radixsort's row-major
	// tie-break, good enough for these small fixtures.
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && pix[idx[j-1]] > pix[idx[j]]; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
	return idx
}

// S1: a single on-pixel, L=1, K=0 survives at its own value.
func TestScenarioS1(t *testing.T) {
	pix := []uint8{5}
	out := Run(pix, sortedIndices(pix), 1, 1, 1, 0, Vertical)
	assert.Equal(t, []uint8{5}, out)
}

// S2: a full-length flat column survives entirely.
func TestScenarioS2(t *testing.T) {
	pix := []uint8{5, 5, 5}
	out := Run(pix, sortedIndices(pix), 1, 3, 3, 0, Vertical)
	assert.Equal(t, []uint8{5, 5, 5}, out)
}

// S3: a column long enough at the lower value survives at that value.
func TestScenarioS3(t *testing.T) {
	pix := []uint8{5, 5, 3}
	out := Run(pix, sortedIndices(pix), 1, 3, 3, 0, Vertical)
	assert.Equal(t, []uint8{3, 3, 3}, out)
}

// S4: with a one-gap budget, a lone off-pixel between two on-pixels is
// bridged, so the two ends form a length-3 path and keep their value 5.
// The bridged middle pixel's output is capped at its own value 0.
// Cross-checked against the from-scratch reference below.
func TestScenarioS4(t *testing.T) {
	pix := []uint8{5, 0, 5}
	idx := sortedIndices(pix)
	out := Run(pix, idx, 1, 3, 3, 1, Vertical)
	assert.Equal(t, []uint8{5, 0, 5}, out)
	assert.Equal(t, BruteForce(pix, 1, 3, 3, 1, Vertical), out)
}

// The bridged pixel's neighbours are not extinguished at the same
// threshold: the gap bridges them until the lower end (value 4) goes off,
// so both ends survive up to 4 and the upper end does not reach its own 5.
func TestGapBridgedWhileNeighboursSurvive(t *testing.T) {
	pix := []uint8{5, 0, 4}
	idx := sortedIndices(pix)
	out := Run(pix, idx, 1, 3, 3, 1, Vertical)
	assert.Equal(t, BruteForce(pix, 1, 3, 3, 1, Vertical), out)
}

// S5: the same column with zero gap budget cannot bridge the middle
// off-pixel, so no length-3 path exists anywhere in the column.
func TestScenarioS5(t *testing.T) {
	pix := []uint8{5, 0, 5}
	out := Run(pix, sortedIndices(pix), 1, 3, 3, 0, Vertical)
	assert.Equal(t, []uint8{0, 0, 0}, out)
}

func TestAntiExtensivity(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		nx, ny := 1+r.Intn(5), 1+r.Intn(5)
		pix := make([]uint8, nx*ny)
		for i := range pix {
			pix[i] = uint8(r.Intn(256))
		}
		l := 1 + r.Intn(4)
		k := r.Intn(3)
		tmpl := Vertical
		if trial%2 == 1 {
			tmpl = PlusDiagonal
		}
		out := Run(pix, sortedIndices(pix), nx, ny, l, k, tmpl)
		for i := range pix {
			assert.LessOrEqualf(t, out[i], pix[i], "trial %d pixel %d", trial, i)
		}
	}
}

// TestMatchesBruteForce cross-checks the incremental row-queue sweep
// against a from-scratch, non-incremental recomputation of the same
// recurrence, over small random rasters. L is kept above K so the gap
// budget alone never trivially satisfies the length requirement
// (see DESIGN.md's note on the L=1, K>=1 pairing degeneracy).
func TestMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		nx, ny := 1+r.Intn(5), 1+r.Intn(5)
		pix := make([]uint8, nx*ny)
		for i := range pix {
			pix[i] = uint8(r.Intn(4))
		}
		k := r.Intn(3)
		l := k + 2 + r.Intn(3)
		tmpl := Vertical
		if trial%2 == 1 {
			tmpl = PlusDiagonal
		}
		got := Run(pix, sortedIndices(pix), nx, ny, l, k, tmpl)
		want := BruteForce(pix, nx, ny, l, k, tmpl)
		assert.Equalf(t, want, got, "trial %d nx=%d ny=%d l=%d k=%d tmpl=%v pix=%v", trial, nx, ny, l, k, tmpl, pix)
	}
}

func TestMonotonicInL(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 20; trial++ {
		nx, ny := 1+r.Intn(4), 1+r.Intn(4)
		pix := make([]uint8, nx*ny)
		for i := range pix {
			pix[i] = uint8(r.Intn(4))
		}
		k := r.Intn(2)
		lSmall := k + 1 + r.Intn(2)
		lBig := lSmall + 1 + r.Intn(2)
		idx := sortedIndices(pix)
		small := Run(pix, idx, nx, ny, lSmall, k, Vertical)
		big := Run(pix, idx, nx, ny, lBig, k, Vertical)
		for i := range pix {
			assert.GreaterOrEqualf(t, small[i], big[i], "trial %d pixel %d", trial, i)
		}
	}
}

func TestMonotonicInK(t *testing.T) {
	r := rand.New(rand.NewSource(123))
	for trial := 0; trial < 20; trial++ {
		nx, ny := 1+r.Intn(4), 1+r.Intn(4)
		pix := make([]uint8, nx*ny)
		for i := range pix {
			pix[i] = uint8(r.Intn(4))
		}
		l := 3 + r.Intn(3)
		kSmall := r.Intn(2)
		kBig := kSmall + 1
		idx := sortedIndices(pix)
		small := Run(pix, idx, nx, ny, l, kSmall, Vertical)
		big := Run(pix, idx, nx, ny, l, kBig, Vertical)
		for i := range pix {
			assert.LessOrEqualf(t, small[i], big[i], "trial %d pixel %d", trial, i)
		}
	}
}
