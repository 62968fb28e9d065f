package engine

import "sort"

// BruteForce is a from-scratch reference used only by tests: instead of
// incrementally propagating chain-length changes through row queues, it
// recomputes every chain-length array from nothing each time a pixel is
// turned off. It shares the exact recurrence in pathopen_orig.cxx (same
// clamp, same pairing formulas) so it is a check on Run's incremental
// bookkeeping, not a restatement of a different definition of the filter.
func BruteForce(pix []uint8, nx, ny, l, k int, tmpl Template) []uint8 {
	n := nx * ny
	nk := k + 1
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	output := make([]uint8, n)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return pix[order[a]] < pix[order[b]] })

	idx := func(kk, p int) int { return kk + nk*p }

	for _, p := range order {
		threshold := pix[p]
		alive[p] = false

		chainUp := computeChain(alive, nx, ny, l, k, tmpl, true)
		chainDown := computeChain(alive, nx, ny, l, k, tmpl, false)

		count := 0
		for kk := 0; kk < k; kk++ {
			if chainUp[idx(kk, p)]+chainDown[idx(k-1-kk, p)]+1 >= int32(l) {
				count++
			}
		}
		if count == 0 {
			output[p] = threshold
		}
	}
	return output
}

// computeChain computes chain_up (up == true) or chain_down (up == false)
// from scratch for the current alive set, via forward DP in the direction
// opposite to the chain: chain_up[p] depends only on rows above p, so a
// single ascending pass over y (and, for PlusDiagonal, ascending x within a
// row, matching its added in-row dependency) computes every value with no
// queues at all.
func computeChain(alive []bool, nx, ny, l, k int, tmpl Template, up bool) []int32 {
	nk := k + 1
	clamp := int32(l - 1)
	chain := make([]int32, nk*nx*ny)
	idx := func(kk, p int) int { return kk + nk*p }

	yRange := func() []int {
		ys := make([]int, ny)
		for i := range ys {
			if up {
				ys[i] = i
			} else {
				ys[i] = ny - 1 - i
			}
		}
		return ys
	}()

	for _, y := range yRange {
		for xi := 0; xi < nx; xi++ {
			x := xi
			if !up {
				x = nx - 1 - xi
			}
			p := x + nx*y
			gapPreds, livePreds := predecessors(tmpl, x, y, nx, ny, up)
			for kk := 0; kk < nk; kk++ {
				maxPrev := int32(-1)
				if kk > 0 {
					for _, q := range gapPreds {
						if v := chain[idx(kk-1, q)]; v > maxPrev {
							maxPrev = v
						}
					}
				}
				for _, q := range livePreds {
					if alive[q] {
						if v := chain[idx(kk, q)]; v > maxPrev {
							maxPrev = v
						}
					}
				}
				v := maxPrev + 1
				if v > clamp {
					v = clamp
				}
				chain[idx(kk, p)] = v
			}
		}
	}
	return chain
}

// predecessors returns the neighbour-template's predecessor pixel indices
// for (x,y) in the given direction; gap and live lists are identical sets,
// just consulted under different gap-budget rules by the caller.
func predecessors(tmpl Template, x, y, nx, ny int, up bool) (gapPreds, livePreds []int) {
	add := func(xx, yy int) {
		if xx < 0 || xx >= nx || yy < 0 || yy >= ny {
			return
		}
		p := xx + nx*yy
		gapPreds = append(gapPreds, p)
		livePreds = append(livePreds, p)
	}
	switch {
	case up && tmpl == Vertical:
		add(x-1, y-1)
		add(x, y-1)
		add(x+1, y-1)
	case up && tmpl == PlusDiagonal:
		add(x-1, y-1)
		add(x, y-1)
		add(x-1, y)
	case !up && tmpl == Vertical:
		add(x-1, y+1)
		add(x, y+1)
		add(x+1, y+1)
	case !up && tmpl == PlusDiagonal:
		add(x, y+1)
		add(x+1, y+1)
		add(x+1, y)
	}
	return
}
