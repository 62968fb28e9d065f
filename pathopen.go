package pathopen

import (
	"github.com/gophotone/pathopen/internal/engine"
	"github.com/gophotone/pathopen/internal/radixsort"
	"github.com/gophotone/pathopen/internal/raster"
)

// Open computes the four-orientation grayscale path opening of img with
// the given parameters, returning a new raster the same size as img. img
// is never modified.
//
// Grounded directly on original_source/Paths_2D/pathopen_orig.cxx's
// pathopen(): run the vertical and ++diagonal engines directly, then again
// on a transposed copy (recovering horizontal) and a vertically-flipped
// copy (recovering the +- diagonal), mapping each accumulator back to the
// original orientation and combining all four by per-pixel maximum.
func Open(img *raster.Raster, l, k int) (*raster.Raster, error) {
	opts := Options{L: l, K: k}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if img.Width <= 0 || img.Height <= 0 {
		return nil, argErrorf("pathopen: raster dimensions must be positive, got %dx%d", img.Width, img.Height)
	}

	nx, ny := img.Width, img.Height
	indices := radixsort.Sort(img.Pix)

	out := raster.New(nx, ny)

	// Vertical.
	accumulateMax(out, engine.Run(img.Pix, indices, nx, ny, l, k, engine.Vertical))

	// ++diagonal.
	accumulateMax(out, engine.Run(img.Pix, indices, nx, ny, l, k, engine.PlusDiagonal))

	// Horizontal: vertical engine over the transposed raster, mapped back.
	transposedImg := raster.Transpose(img, nil)
	transposedIdx := raster.TransposeIndices(indices, nx, ny)
	horiz := engine.Run(transposedImg.Pix, transposedIdx, ny, nx, l, k, engine.Vertical)
	horizRaster := &raster.Raster{Width: ny, Height: nx, Pix: horiz}
	accumulateMax(out, raster.Transpose(horizRaster, nil).Pix)

	// +- diagonal: ++diagonal engine over the vertically-flipped raster,
	// mapped back.
	flippedImg := raster.FlipY(img, nil)
	flippedIdx := raster.FlipIndices(indices, nx, ny)
	antiDiag := engine.Run(flippedImg.Pix, flippedIdx, nx, ny, l, k, engine.PlusDiagonal)
	antiDiagRaster := &raster.Raster{Width: nx, Height: ny, Pix: antiDiag}
	accumulateMax(out, raster.FlipY(antiDiagRaster, nil).Pix)

	return out, nil
}

func accumulateMax(out *raster.Raster, candidate []uint8) {
	for i, v := range candidate {
		if v > out.Pix[i] {
			out.Pix[i] = v
		}
	}
}
