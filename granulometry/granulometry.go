// Package granulometry accumulates a Pareto front of (path length,
// grayscale threshold) points: the auxiliary curve a path-opening sweep can
// build alongside its main output to summarise, for the whole image, how
// much threshold survives at each candidate path length.
//
// Grounded directly on original_source/Paths_2D/path_support.c's
// PATH_GRANULOMETRY_constructor/add_point/path_length_to_threshold/
// threshold_to_path_length/merge: same tie-break rules, same geometric
// growth, re-expressed with a Go slice instead of a hand-rolled malloc'd
// pair of parallel arrays.
package granulometry

// minCapacity mirrors PATH_GRANULOMETRY_MIN_ALLOCATED_LENGTH: new curves
// start with room for a few points before the first grow.
const minCapacity = 8

// Point is one entry on the curve: the largest threshold at which a path of
// at least Length survives somewhere in the image.
type Point struct {
	Length    int
	Threshold uint8
}

// Curve is a Pareto front of Points, stored in the order points are added:
// strictly decreasing Length, strictly increasing Threshold.
type Curve struct {
	points []Point
}

// New returns an empty curve with room for at least capacityHint points
// before its first reallocation.
func New(capacityHint int) *Curve {
	if capacityHint < minCapacity {
		capacityHint = minCapacity
	}
	return &Curve{points: make([]Point, 0, capacityHint)}
}

// Add records that a path of exactly length pixels survives up to
// threshold, eliding into the curve's last point when doing so keeps the
// front consistent instead of always appending. Callers are expected to
// call Add with non-increasing length and non-decreasing threshold, the
// order a path-opening sweep naturally produces; violating that order
// still terminates but the resulting curve is not a valid Pareto front.
func (c *Curve) Add(length int, threshold uint8) {
	if n := len(c.points); n > 0 {
		last := &c.points[n-1]
		if last.Length == length {
			if threshold > last.Threshold {
				last.Threshold = threshold
			}
			return
		}
		if last.Threshold == threshold {
			return
		}
	}
	c.points = append(c.points, Point{Length: length, Threshold: threshold})
}

// LengthToThreshold returns the largest threshold at which a path of at
// least length pixels is known to survive, or 0 if the curve has no such
// point (including an empty curve).
func (c *Curve) LengthToThreshold(length int) uint8 {
	var value uint8
	for _, p := range c.points {
		if p.Length < length {
			break
		}
		value = p.Threshold
	}
	return value
}

// ThresholdToLength returns the longest path length known to survive at
// or below threshold, or 0 if the curve has no such point.
func (c *Curve) ThresholdToLength(threshold uint8) int {
	var length int
	for _, p := range c.points {
		if p.Threshold > threshold {
			break
		}
		length = p.Length
	}
	return length
}

// Points returns the curve's points in storage order (decreasing Length,
// increasing Threshold). The returned slice must not be modified.
func (c *Curve) Points() []Point {
	return c.points
}

// Merge combines two curves into a new one, keeping only points that are
// not dominated by another point with both a longer-or-equal length and a
// higher-or-equal threshold. Both inputs are stored in decreasing-length,
// increasing-threshold order (Add's invariant), so the merge is a single
// descending-length competitive consumption of the two lists, exactly as
// the original's merge function performs it.
func Merge(a, b *Curve) *Curve {
	out := New(len(a.points) + len(b.points))

	ia, ib := 0, 0
	curLength := 1 << 30
	curThreshold := -1

	lengthAt := func(pts []Point, i int) int {
		if i >= len(pts) {
			return -1
		}
		return pts[i].Length
	}

	total := len(a.points) + len(b.points)
	for i := 0; i < total; i++ {
		var newLength int
		var newThreshold uint8
		if lengthAt(a.points, ia) > lengthAt(b.points, ib) {
			newLength = a.points[ia].Length
			newThreshold = a.points[ia].Threshold
			ia++
		} else {
			newLength = b.points[ib].Length
			newThreshold = b.points[ib].Threshold
			ib++
		}

		if int(newThreshold) > curThreshold {
			if newLength < curLength {
				out.points = append(out.points, Point{Length: newLength, Threshold: newThreshold})
				curLength = newLength
			} else if n := len(out.points); n > 0 {
				out.points[n-1].Threshold = newThreshold
			}
			curThreshold = int(newThreshold)
		}
	}

	return out
}
