// Package raster holds the dense 8-bit pixel buffer used throughout the
// path-opening pipeline, plus the two orientation bijections (transpose and
// vertical flip) the four-orientation driver needs.
package raster

// Raster is a dense, row-major 8-bit grayscale image: pixel (x, y) lives at
// Pix[x + Width*y].
type Raster struct {
	Width, Height int
	Pix           []uint8
}

// New allocates a zeroed raster of the given dimensions.
func New(width, height int) *Raster {
	return &Raster{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// At returns the pixel value at (x, y).
func (r *Raster) At(x, y int) uint8 {
	return r.Pix[x+r.Width*y]
}

// Set stores the pixel value at (x, y).
func (r *Raster) Set(x, y int, v uint8) {
	r.Pix[x+r.Width*y] = v
}

// Clone returns an independent copy.
func (r *Raster) Clone() *Raster {
	out := &Raster{Width: r.Width, Height: r.Height, Pix: make([]uint8, len(r.Pix))}
	copy(out.Pix, r.Pix)
	return out
}

// Transpose returns the width/height-swapped raster with pixel (x, y) moved
// to (y, x). dst may be nil (out-of-place allocation) or an existing raster
// of the transposed dimensions reused in place of allocating a fresh one;
// dst must not alias src.Pix.
func Transpose(src *Raster, dst *Raster) *Raster {
	nx, ny := src.Width, src.Height
	if dst == nil {
		dst = New(ny, nx)
	}
	for y := 0; y < ny; y++ {
		rowBase := nx * y
		for x := 0; x < nx; x++ {
			dst.Pix[y+ny*x] = src.Pix[rowBase+x]
		}
	}
	return dst
}

// TransposeIndices applies the transpose bijection to a sorted-index list
// built over a src.Width x src.Height raster, producing the corresponding
// index list for the transposed (src.Height x src.Width) raster.
func TransposeIndices(indices []int32, nx, ny int) []int32 {
	out := make([]int32, len(indices))
	for i, old := range indices {
		x := int(old) % nx
		y := int(old) / nx
		out[i] = int32(y + ny*x)
	}
	return out
}

// FlipY returns the vertically-flipped raster: pixel (x, y) moves to
// (x, Height-1-y). dst follows the same aliasing rule as Transpose.
func FlipY(src *Raster, dst *Raster) *Raster {
	nx, ny := src.Width, src.Height
	if dst == nil {
		dst = New(nx, ny)
	}
	for y := 0; y < ny; y++ {
		srcBase := nx * y
		dstBase := nx * (ny - 1 - y)
		copy(dst.Pix[dstBase:dstBase+nx], src.Pix[srcBase:srcBase+nx])
	}
	return dst
}

// FlipIndices applies the vertical-flip bijection to a sorted-index list.
func FlipIndices(indices []int32, nx, ny int) []int32 {
	out := make([]int32, len(indices))
	for i, old := range indices {
		x := int(old) % nx
		y := int(old) / nx
		out[i] = int32(x + nx*(ny-1-y))
	}
	return out
}
