package engine

// runDiagonal ports diag_pathopen: the "++" diagonal template's upstream
// neighbours are (x-1,y-1), (x,y-1) and the in-row (x-1,y), and its
// downstream ones (x,y+1), (x+1,y+1) and the in-row (x+1,y). The in-row
// neighbour means a row's queue can grow mid-pass (a
// pixel's own update can flag its immediate row neighbour for processing
// in the very same pass). Both sweeps below walk each row with an
// explicit index + one-step "queued further along this row" flag instead
// of a fixed range, mirroring the original's right_queue/left_queue
// technique verbatim rather than re-deriving an equivalent structure.
func (s *state) runDiagonal(pix []uint8, indices []int32) {
	n := len(indices)
	i := 0
	for i < n {
		threshold := pix[indices[i]]
		for i < n && pix[indices[i]] == threshold {
			rowY := int(indices[i]) / s.nx
			newDown := make([][]int32, s.nk)
			newRight := make([][]int32, s.nk)
			newUp := make([][]int32, s.nk)
			newLeft := make([][]int32, s.nk)

			for i < n && pix[indices[i]] == threshold && int(indices[i])/s.nx == rowY {
				p := int(indices[i])
				x := p % s.nx
				y := rowY

				if s.alive[p] {
					s.extinguishAtRemoval(p, threshold)

					if y < s.ny-1 {
						base := p + s.nx
						for kk := 0; kk < s.nk; kk++ {
							newDown[kk] = s.enqueueSingle(s.inQueueDown, newDown[kk], kk, base, int32(x))
							if x < s.nx-1 {
								newDown[kk] = s.enqueueSingle(s.inQueueDown, newDown[kk], kk, base+1, int32(x+1))
							}
						}
					}
					if x < s.nx-1 {
						for kk := 0; kk < s.nk; kk++ {
							newRight[kk] = s.enqueueSingle(s.inQueueDown, newRight[kk], kk, p+1, int32(x+1))
						}
					}
					if y > 0 {
						base := p - s.nx
						for kk := 0; kk < s.nk; kk++ {
							if x > 0 {
								newUp[kk] = s.enqueueSingle(s.inQueueUp, newUp[kk], kk, base-1, int32(x-1))
							}
							newUp[kk] = s.enqueueSingle(s.inQueueUp, newUp[kk], kk, base, int32(x))
						}
					}
					if x > 0 {
						for kk := 0; kk < s.nk; kk++ {
							newLeft[kk] = s.enqueueSingle(s.inQueueUp, newLeft[kk], kk, p-1, int32(x-1))
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
			for kk := 0; kk < s.nk; kk++ {
				if len(newRight[kk]) > 0 {
					s.qDown.MergeRow(kk, rowY, newRight[kk])
				}
			}
			if rowY-1 >= 0 {
				for kk := 0; kk < s.nk; kk++ {
					if len(newUp[kk]) > 0 {
						s.qUp.MergeRow(kk, rowY-1, newUp[kk])
					}
				}
			}
			for kk := 0; kk < s.nk; kk++ {
				if len(newLeft[kk]) > 0 {
					s.qUp.MergeRow(kk, rowY, newLeft[kk])
				}
			}
		}

		s.diagonalDownwardSweep(threshold)
		s.diagonalUpwardSweep(threshold)
	}
}

func (s *state) diagonalDownwardSweep(threshold uint8) {
	nx, ny, K := s.nx, s.ny, s.k
	for kk := 0; kk < s.nk; kk++ {
		for y := 0; y < ny; y++ {
			row := s.qDown.Row(kk, y)
			if len(row) == 0 {
				continue
			}
			var curRowNextK, nextRowCurK, nextRowNextK []int32

			rightQueue := false
			i := 0
			x := int(row[i])
			for {
				p := x + nx*y
				s.inQueueDown[s.idx(kk, p)] = false

				maxPrev := int32(-1)
				if kk > 0 {
					if y > 0 {
						if x > 0 {
							maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk-1, p-nx-1)])
						}
						maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk-1, p-nx)])
					}
					if x > 0 {
						maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk-1, p-1)])
					}
				}
				if y > 0 {
					if x > 0 && s.alive[p-nx-1] {
						maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk, p-nx-1)])
					}
					if s.alive[p-nx] {
						maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk, p-nx)])
					}
				}
				if x > 0 && s.alive[p-1] {
					maxPrev = maxInt32(maxPrev, s.chainUp[s.idx(kk, p-1)])
				}

				if maxPrev+1 < s.chainUp[s.idx(kk, p)] {
					s.chainUp[s.idx(kk, p)] = maxPrev + 1
					s.maybeFlipFlag(p, kk, threshold)

					if y < ny-1 {
						nextRowCurK = s.enqueueSingle(s.inQueueDown, nextRowCurK, kk, p+nx, int32(x))
						if x < nx-1 {
							nextRowCurK = s.enqueueSingle(s.inQueueDown, nextRowCurK, kk, p+nx+1, int32(x+1))
						}
					}
					if x < nx-1 {
						cell := s.idx(kk, p+1)
						if !s.inQueueDown[cell] {
							rightQueue = true
							s.inQueueDown[cell] = true
						}
					}
					if kk < K {
						if y < ny-1 {
							nextRowNextK = s.enqueueSingle(s.inQueueDown, nextRowNextK, kk+1, p+nx, int32(x))
							if x < nx-1 {
								nextRowNextK = s.enqueueSingle(s.inQueueDown, nextRowNextK, kk+1, p+nx+1, int32(x+1))
							}
						}
						if x < nx-1 {
							curRowNextK = s.enqueueSingle(s.inQueueDown, curRowNextK, kk+1, p+1, int32(x+1))
						}
					}
				}

				if rightQueue {
					rightQueue = false
					x++
					if x > nx-1 {
						break
					}
					if i+1 < len(row) && int(row[i+1]) == x {
						i++
					}
				} else {
					if i+1 >= len(row) {
						break
					}
					i++
					x = int(row[i])
				}
			}

			s.qDown.Clear(kk, y)
			if y+1 < ny {
				if len(nextRowCurK) > 0 {
					s.qDown.MergeRow(kk, y+1, nextRowCurK)
				}
				if len(nextRowNextK) > 0 {
					s.qDown.MergeRow(kk+1, y+1, nextRowNextK)
				}
			}
			if len(curRowNextK) > 0 {
				s.qDown.MergeRow(kk+1, y, curRowNextK)
			}
		}
	}
}

func (s *state) diagonalUpwardSweep(threshold uint8) {
	nx, ny, K := s.nx, s.ny, s.k
	for kk := 0; kk < s.nk; kk++ {
		for y := ny - 1; y >= 0; y-- {
			row := s.qUp.Row(kk, y)
			if len(row) == 0 {
				continue
			}
			var curRowNextK, newRowCurK, newRowNextK []int32

			leftQueue := false
			i := len(row) - 1
			x := int(row[i])
			for {
				p := x + nx*y
				s.inQueueUp[s.idx(kk, p)] = false

				maxPrev := int32(-1)
				if kk > 0 {
					if y < ny-1 {
						maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk-1, p+nx)])
						if x < nx-1 {
							maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk-1, p+nx+1)])
						}
					}
					if x < nx-1 {
						maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk-1, p+1)])
					}
				}
				if y < ny-1 {
					if s.alive[p+nx] {
						maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk, p+nx)])
					}
					if x < nx-1 && s.alive[p+nx+1] {
						maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk, p+nx+1)])
					}
				}
				if x < nx-1 && s.alive[p+1] {
					maxPrev = maxInt32(maxPrev, s.chainDown[s.idx(kk, p+1)])
				}

				if maxPrev+1 < s.chainDown[s.idx(kk, p)] {
					s.chainDown[s.idx(kk, p)] = maxPrev + 1
					s.maybeFlipFlagUp(p, kk, threshold)

					if y > 0 {
						if x > 0 {
							newRowCurK = s.enqueueSingle(s.inQueueUp, newRowCurK, kk, p-nx-1, int32(x-1))
						}
						newRowCurK = s.enqueueSingle(s.inQueueUp, newRowCurK, kk, p-nx, int32(x))
					}
					if x > 0 {
						cell := s.idx(kk, p-1)
						if !s.inQueueUp[cell] {
							leftQueue = true
							s.inQueueUp[cell] = true
						}
					}
					if kk < K {
						if y > 0 {
							if x > 0 {
								newRowNextK = s.enqueueSingle(s.inQueueUp, newRowNextK, kk+1, p-nx-1, int32(x-1))
							}
							newRowNextK = s.enqueueSingle(s.inQueueUp, newRowNextK, kk+1, p-nx, int32(x))
						}
						if x > 0 {
							curRowNextK = s.enqueueSingle(s.inQueueUp, curRowNextK, kk+1, p-1, int32(x-1))
						}
					}
				}

				if leftQueue {
					leftQueue = false
					x--
					if x < 0 {
						break
					}
					if i-1 >= 0 && int(row[i-1]) == x {
						i--
					}
				} else {
					if i-1 < 0 {
						break
					}
					i--
					x = int(row[i])
				}
			}

			s.qUp.Clear(kk, y)
			if y-1 >= 0 {
				reverseInt32(newRowCurK)
				reverseInt32(newRowNextK)
				if len(newRowCurK) > 0 {
					s.qUp.MergeRow(kk, y-1, newRowCurK)
				}
				if len(newRowNextK) > 0 {
					s.qUp.MergeRow(kk+1, y-1, newRowNextK)
				}
			}
			if len(curRowNextK) > 0 {
				reverseInt32(curRowNextK)
				s.qUp.MergeRow(kk+1, y, curRowNextK)
			}
		}
	}
}

// reverseInt32 reverses a slice in place. The upward sweep's row walk
// visits descending x, so columns accumulate in descending order; the row
// queues require ascending, duplicate-free input.
func reverseInt32(s []int32) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
