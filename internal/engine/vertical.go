package engine

// runVertical ports vert_pathopen: a three-neighbour template (the pixel
// directly above/below plus its two horizontal neighbours), with no in-row
// propagation, so each row's row-queue can be processed as a single
// ascending pass with no dynamic growth within the row.
func (s *state) runVertical(pix []uint8, indices []int32) {
	n := len(indices)
	i := 0
	for i < n {
		threshold := pix[indices[i]]
		for i < n && pix[indices[i]] == threshold {
			rowY := int(indices[i]) / s.nx
			newDown := make([][]int32, s.nk)
			newUp := make([][]int32, s.nk)

			for i < n && pix[indices[i]] == threshold && int(indices[i])/s.nx == rowY {
				p := int(indices[i])
				x := p % s.nx
				y := rowY

				if s.alive[p] {
					s.extinguishAtRemoval(p, threshold)

					if y < s.ny-1 {
						base := p + s.nx
						for kk := 0; kk < s.nk; kk++ {
							if x > 0 {
								newDown[kk] = s.enqueueSingle(s.inQueueDown, newDown[kk], kk, base-1, int32(x-1))
							}
							newDown[kk] = s.enqueueSingle(s.inQueueDown, newDown[kk], kk, base, int32(x))
							if x < s.nx-1 {
								newDown[kk] = s.enqueueSingle(s.inQueueDown, newDown[kk], kk, base+1, int32(x+1))
							}
						}
					}
					if y > 0 {
						base := p - s.nx
						for kk := 0; kk < s.nk; kk++ {
							if x > 0 {
								newUp[kk] = s.enqueueSingle(s.inQueueUp, newUp[kk], kk, base-1, int32(x-1))
							}
							newUp[kk] = s.enqueueSingle(s.inQueueUp, newUp[kk], kk, base, int32(x))
							if x < s.nx-1 {
								newUp[kk] = s.enqueueSingle(s.inQueueUp, newUp[kk], kk, base+1, int32(x+1))
							}
						}
					}
				}
				i++
			}

			if rowY+1 < s.ny {
				for kk := 0; kk < s.nk; kk++ {
					if len(newDown[kk]) > 0 {
						s.qDown.MergeRow(kk, rowY+1, newDown[kk])
					}
				}
			}
			if rowY-1 >= 0 {
				for kk := 0; kk < s.nk; kk++ {
					if len(newUp[kk]) > 0 {
						s.qUp.MergeRow(kk, rowY-1, newUp[kk])
					}
				}
			}
		}

		s.verticalDownwardSweep(threshold)
		s.verticalUpwardSweep(threshold)
	}
}

func (s *state) verticalDownwardSweep(threshold uint8) {
	nx, ny, K := s.nx, s.ny, s.k
	for kk := 0; kk < s.nk; kk++ {
		for y := 1; y < ny; y++ {
			row := s.qDown.Row(kk, y)
			if len(row) == 0 {
				continue
			}
			var curK, nextK []int32
			for _, xi := range row {
				x := int(xi)
				p := x + nx*y
				s.inQueueDown[s.idx(kk, p)] = false

				pred := p - nx
				maxPrev := int32(-1)
				if kk > 0 {
					if x > 0 {
						maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk-1, pred-1)])
					}
					maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk-1, pred)])
					if x < nx-1 {
						maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk-1, pred+1)])
					}
				}
				if x > 0 && s.alive[pred-1] {
					maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk, pred-1)])
				}
				if s.alive[pred] {
					maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk, pred)])
				}
				if x < nx-1 && s.alive[pred+1] {
					maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk, pred+1)])
				}

				if maxPrev+1 < s.chainUp[s.idx(kk, p)] {
					s.chainUp[s.idx(kk, p)] = maxPrev + 1
					s.maybeFlipFlag(p, kk, threshold)

					if y+1 < ny {
						base := p + nx
						if x > 0 {
							curK = s.enqueueSingle(s.inQueueDown, curK, kk, base-1, int32(x-1))
						}
						curK = s.enqueueSingle(s.inQueueDown, curK, kk, base, int32(x))
						if x < nx-1 {
							curK = s.enqueueSingle(s.inQueueDown, curK, kk, base+1, int32(x+1))
						}
						if kk < K {
							if x > 0 {
								nextK = s.enqueueSingle(s.inQueueDown, nextK, kk+1, base-1, int32(x-1))
							}
							nextK = s.enqueueSingle(s.inQueueDown, nextK, kk+1, base, int32(x))
							if x < nx-1 {
								nextK = s.enqueueSingle(s.inQueueDown, nextK, kk+1, base+1, int32(x+1))
							}
						}
					}
				}
			}
			s.qDown.Clear(kk, y)
			if y+1 < ny {
				if len(curK) > 0 {
					s.qDown.MergeRow(kk, y+1, curK)
				}
				if len(nextK) > 0 {
					s.qDown.MergeRow(kk+1, y+1, nextK)
				}
			}
		}
	}
}

func (s *state) verticalUpwardSweep(threshold uint8) {
	nx, ny, K := s.nx, s.ny, s.k
	for kk := 0; kk < s.nk; kk++ {
		for y := ny - 2; y >= 0; y-- {
			row := s.qUp.Row(kk, y)
			if len(row) == 0 {
				continue
			}
			var curK, nextK []int32
			for _, xi := range row {
				x := int(xi)
				p := x + nx*y
				s.inQueueUp[s.idx(kk, p)] = false

				succ := p + nx
				maxPrev := int32(-1)
				if kk > 0 {
					if x > 0 {
						maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk-1, succ-1)])
					}
					maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk-1, succ)])
					if x < nx-1 {
						maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk-1, succ+1)])
					}
				}
				if x > 0 && s.alive[succ-1] {
					maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk, succ-1)])
				}
				if s.alive[succ] {
					maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk, succ)])
				}
				if x < nx-1 && s.alive[succ+1] {
					maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk, succ+1)])
				}

				if maxPrev+1 < s.chainDown[s.idx(kk, p)] {
					s.chainDown[s.idx(kk, p)] = maxPrev + 1
					s.maybeFlipFlagUp(p, kk, threshold)

					if y-1 >= 0 {
						base := p - nx
						if x > 0 {
							curK = s.enqueueSingle(s.inQueueUp, curK, kk, base-1, int32(x-1))
						}
						curK = s.enqueueSingle(s.inQueueUp, curK, kk, base, int32(x))
						if x < nx-1 {
							curK = s.enqueueSingle(s.inQueueUp, curK, kk, base+1, int32(x+1))
						}
						if kk < K {
							if x > 0 {
								nextK = s.enqueueSingle(s.inQueueUp, nextK, kk+1, base-1, int32(x-1))
							}
							nextK = s.enqueueSingle(s.inQueueUp, nextK, kk+1, base, int32(x))
							if x < nx-1 {
								nextK = s.enqueueSingle(s.inQueueUp, nextK, kk+1, base+1, int32(x+1))
							}
						}
					}
				}
			}
			s.qUp.Clear(kk, y)
			if y-1 >= 0 {
				if len(curK) > 0 {
					s.qUp.MergeRow(kk, y-1, curK)
				}
				if len(nextK) > 0 {
					s.qUp.MergeRow(kk+1, y-1, nextK)
				}
			}
		}
	}
}
