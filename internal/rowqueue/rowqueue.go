// Package rowqueue implements the per-(gap, row) column-index queues the
// directional path-opening engine uses to propagate chain-length updates.
// Individual inserts are deliberately not supported: callers must batch by
// row so a single ascending merge can do the work in time linear in the
// combined length, rather than paying for repeated single-element splices.
package rowqueue

// Grid is an nk x ny grid of strictly ascending, duplicate-free column
// lists.
type Grid struct {
	nk, ny int
	rows   [][]int32 // flattened k + nk*y
}

// New allocates an empty grid for the given gap-layer and row counts.
func New(nk, ny int) *Grid {
	return &Grid{nk: nk, ny: ny, rows: make([][]int32, nk*ny)}
}

// Row returns the current ascending column list for layer k, row y. The
// returned slice must not be retained across a MergeRow call for the same
// cell.
func (g *Grid) Row(k, y int) []int32 {
	return g.rows[k+g.nk*y]
}

// Clear empties the column list for layer k, row y, without releasing its
// backing array, so the next MergeRow into the same cell can reuse it.
func (g *Grid) Clear(k, y int) {
	cell := k + g.nk*y
	g.rows[cell] = g.rows[cell][:0]
}

// MergeRow unions the given already-ascending, already-duplicate-free
// column list into the existing content of cell (k, y), preserving
// ascending order and uniqueness; a column present in both is kept once.
// cols is assumed free of duplicates within itself; callers rely on
// in-queue membership flags kept outside this structure to prevent the
// same column being offered twice in one call.
func (g *Grid) MergeRow(k, y int, cols []int32) {
	if len(cols) == 0 {
		return
	}
	cell := k + g.nk*y
	old := g.rows[cell]
	if len(old) == 0 {
		g.rows[cell] = append(old, cols...)
		return
	}

	merged := make([]int32, 0, len(old)+len(cols))
	i, j := 0, 0
	for i < len(old) && j < len(cols) {
		if old[i] < cols[j] {
			merged = append(merged, old[i])
			i++
		} else if old[i] == cols[j] {
			merged = append(merged, old[i])
			i++
			j++
		} else {
			merged = append(merged, cols[j])
			j++
		}
	}
	merged = append(merged, old[i:]...)
	merged = append(merged, cols[j:]...)
	g.rows[cell] = merged
}
