// Package engine implements the single-orientation incremental path-opening
// sweep (threshold decomposition over a non-decreasing pixel order). It is
// grounded directly on original_source/Paths_2D/pathopen_orig.cxx's
// vert_pathopen and diag_pathopen: same state layout, same threshold-group
// and sweep control flow, ported to Go's explicit-error, slice-based idiom.
package engine

import "github.com/gophotone/pathopen/internal/rowqueue"

// Template selects one of the two neighbour shapes the incremental sweep
// propagates chain lengths along. The four-orientation driver obtains
// horizontal and the +- diagonal from Vertical and PlusDiagonal by running
// them over a transposed or flipped raster.
type Template int

const (
	// Vertical connects each pixel to the three pixels above/below it:
	// (x-1,y-1), (x,y-1), (x+1,y-1) and the symmetric downward triple.
	Vertical Template = iota
	// PlusDiagonal connects (x-1,y-1), (x,y-1), (x-1,y) upstream and
	// (x,y+1), (x+1,y+1), (x+1,y) downstream: the "++" diagonal
	// orientation, whose in-row neighbour requires a single growing-queue
	// pass over each row rather than independent batches.
	PlusDiagonal
)

// state holds every array the sweep reads and writes, indexed exactly as
// spec.md's flat tensor scheme: gap-layer k and pixel index p combine as
// k + nk*p.
type state struct {
	nx, ny, nk, l, k int

	// chainUp[k,p] / chainDown[k,p]: longest chain ending at (excluding) p
	// using k upstream/downstream gaps, not yet capped by p's own state.
	chainUp, chainDown []int32

	// inQueueUp[k,p] / inQueueDown[k,p]: is p already pending in the
	// corresponding row-queue cell for gap-layer k, preventing duplicate
	// enqueues within one threshold's propagation.
	inQueueUp, inQueueDown []bool

	// outAlive[k,p]: does pairing layer k still certify a length >= L
	// path through p. alive[p]/aliveCount[p] track whether p itself is
	// still ON in the running thresholded image, and how many layers of
	// outAlive remain true.
	outAlive   []bool
	alive      []bool
	aliveCount []uint8

	output []uint8

	qUp, qDown *rowqueue.Grid
}

func (s *state) idx(k, p int) int { return k + s.nk*p }

// newState allocates and initialises every array for an nx x ny raster,
// with per-pixel initial chain lengths supplied by initUp/initDown (the two
// templates seed these differently: see vertical.go and diagonal.go).
func newState(nx, ny, l, k int, initUp, initDown func(x, y int) int32) *state {
	n := nx * ny
	nk := k + 1
	clamp := int32(l - 1)

	s := &state{
		nx: nx, ny: ny, nk: nk, l: l, k: k,
		chainUp:    make([]int32, nk*n),
		chainDown:  make([]int32, nk*n),
		inQueueUp:  make([]bool, nk*n),
		inQueueDown: make([]bool, nk*n),
		outAlive:   make([]bool, nk*n),
		alive:      make([]bool, n),
		aliveCount: make([]uint8, n),
		output:     make([]uint8, n),
		qUp:        rowqueue.New(nk, ny),
		qDown:      rowqueue.New(nk, ny),
	}

	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			p := x + nx*y
			up := initUp(x, y)
			if up > clamp {
				up = clamp
			}
			down := initDown(x, y)
			if down > clamp {
				down = clamp
			}
			for kk := 0; kk < nk; kk++ {
				cell := s.idx(kk, p)
				s.chainUp[cell] = up
				s.chainDown[cell] = down
				s.outAlive[cell] = true
			}
			s.alive[p] = true
			s.aliveCount[p] = uint8(nk)
		}
	}
	return s
}

// extinguishAtRemoval is invoked exactly once per pixel, at the threshold
// equal to its own value: it turns p off in the running thresholded image
// and recomputes its K "one gap used at p" pairing layers from scratch,
// mirroring the C++ original's explicit recount rather than an incremental
// decrement (the alive-pairing flags being replaced have no bearing on the
// off-pairing ones).
func (s *state) extinguishAtRemoval(p int, threshold uint8) {
	s.alive[p] = false
	if s.aliveCount[p] == 0 {
		return
	}
	s.aliveCount[p] = 0
	for kk := 0; kk < s.k; kk++ {
		flag := s.chainUp[s.idx(kk, p)]+s.chainDown[s.idx(s.k-1-kk, p)]+1 >= int32(s.l)
		s.outAlive[s.idx(kk, p)] = flag
		if flag {
			s.aliveCount[p]++
		}
	}
	if s.aliveCount[p] == 0 {
		s.output[p] = threshold
	}
}

// maybeFlipFlag re-evaluates gap-layer k's pairing at p after one of its
// chain arrays changed, using the alive- or off-pairing depending on p's
// current state (spec.md §4.4.4 step 2b / §4.4.5 step 2b). out_alive flags
// only ever go true->false, so a flag already false needs no recheck.
func (s *state) maybeFlipFlag(p, kk int, threshold uint8) {
	cell := s.idx(kk, p)
	if !s.outAlive[cell] {
		return
	}
	var otherK int
	if s.alive[p] {
		otherK = s.k - kk
	} else {
		otherK = s.k - 1 - kk
		if otherK < 0 {
			// k == K with p already off: this pairing layer was never
			// part of the off-branch count (extinguishAtRemoval only
			// ever populates k in [0, K-1]); nothing to flip.
			return
		}
	}
	newFlag := s.chainUp[s.idx(kk, p)]+s.chainDown[s.idx(otherK, p)]+1 >= int32(s.l)
	if newFlag {
		return
	}
	s.outAlive[cell] = false
	s.aliveCount[p]--
	if s.aliveCount[p] == 0 {
		s.output[p] = threshold
	}
}

// maybeFlipFlagUp is the upward-sweep counterpart of maybeFlipFlag. The
// upward sweep just updated chainDown[kk,p]; unlike the downward sweep, the
// pairing layer it can affect is K-kk (or K-1-kk once p is off), not kk
// itself, per pathopen_orig.cxx's upward-sweep branches.
func (s *state) maybeFlipFlagUp(p, kk int, threshold uint8) {
	pairK := s.k - kk
	if !s.alive[p] {
		pairK = s.k - 1 - kk
		if pairK < 0 {
			return
		}
	}
	cell := s.idx(pairK, p)
	if !s.outAlive[cell] {
		return
	}
	newFlag := s.chainUp[s.idx(pairK, p)]+s.chainDown[s.idx(kk, p)]+1 >= int32(s.l)
	if newFlag {
		return
	}
	s.outAlive[cell] = false
	s.aliveCount[p]--
	if s.aliveCount[p] == 0 {
		s.output[p] = threshold
	}
}

// enqueueSingle appends col to list and marks it in-queue, unless it is
// already pending for gap-layer kk at pixel q, preserving the ascending,
// duplicate-free order rowqueue.MergeRow requires as long as callers only
// ever offer strictly-increasing columns (guaranteed by the stable,
// row-major radix sort feeding the whole sweep).
func (s *state) enqueueSingle(flags []bool, list []int32, kk, q int, col int32) []int32 {
	cell := s.idx(kk, q)
	if flags[cell] {
		return list
	}
	flags[cell] = true
	return append(list, col)
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Run executes the full threshold-decomposition sweep for one orientation
// template over a raster whose pixels are pix (row-major, nx*ny long) and
// whose non-decreasing visiting order is indices (as produced by
// internal/radixsort, optionally remapped by internal/raster's transpose or
// flip bijections). Callers are expected to have already validated l >= 1,
// k >= 0 and nx, ny > 0; this is an internal component, not the public API
// boundary (see the root package's Options.validate for that).
func Run(pix []uint8, indices []int32, nx, ny, l, k int, tmpl Template) []uint8 {
	var s *state
	switch tmpl {
	case Vertical:
		s = newState(nx, ny, l, k,
			func(x, y int) int32 { return int32(y) },
			func(x, y int) int32 { return int32(ny - 1 - y) },
		)
		s.runVertical(pix, indices)
	case PlusDiagonal:
		s = newState(nx, ny, l, k,
			func(x, y int) int32 { return int32(x + y) },
			func(x, y int) int32 { return int32((nx - 1 - x) + (ny - 1 - y)) },
		)
		s.runDiagonal(pix, indices)
	default:
		panic("pathopen/engine: unknown template")
	}
	// An off pixel can keep gap pairings alive past its own value, and one
	// that never runs out of pairings is never assigned an output; both are
	// capped at the pixel's own value, so the result never exceeds the input.
	for p, v := range pix {
		if s.aliveCount[p] > 0 || s.output[p] > v {
			s.output[p] = v
		}
	}
	return s.output
}
