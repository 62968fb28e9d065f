package pathopen

import "github.com/gophotone/pathopen/internal/raster"

// NormalizeMode selects the optional contrast pre-pass run before the
// sweep sees a raster. spec.md's Design Notes describe a "dynamic
// contrast-normalisation branch ... present but disabled" alongside a
// static variant that "hard-codes MRI pixel-range constants" in the
// original; this package turns both into explicit, caller-selected modes
// rather than a hard-wired policy.
type NormalizeMode int

const (
	// NormalizeNone runs the sweep on the raster unchanged.
	NormalizeNone NormalizeMode = iota
	// NormalizeStatic clips to [Min,Max] and rescales that range to
	// [0,255], using fixed bounds supplied by the caller.
	NormalizeStatic
	// NormalizeDynamic clips to the image's own observed [min,max] and
	// rescales that range to [0,255].
	NormalizeDynamic
)

// Default clip bounds for NormalizeStatic, matching the original's
// hard-coded MRI pixel range — exposed as named constants so a caller can
// override them instead of the value being silently baked into the
// arithmetic.
const (
	DefaultStaticMin uint8 = 20
	DefaultStaticMax uint8 = 235
)

// NormalizeOptions configures the pre-pass. Min and Max are only consulted
// when Mode is NormalizeStatic.
type NormalizeOptions struct {
	Mode     NormalizeMode
	Min, Max uint8
}

// Validate reports whether o's bounds make sense for its Mode. Callers
// that construct NormalizeOptions from outside this package (e.g. a CLI
// parsing flags) must call this before passing the result to Normalize.
func (o NormalizeOptions) Validate() error {
	if o.Mode == NormalizeStatic && o.Min >= o.Max {
		return argErrorf("pathopen: static normalization requires Min < Max, got %d, %d", o.Min, o.Max)
	}
	return nil
}

// Normalize returns a new raster with the requested contrast pre-pass
// applied; img is never modified in place. NormalizeNone returns a clone
// so callers can always treat the result as independent of img.
func Normalize(img *raster.Raster, opts NormalizeOptions) *raster.Raster {
	switch opts.Mode {
	case NormalizeStatic:
		return clipAndScale(img, opts.Min, opts.Max)
	case NormalizeDynamic:
		min, max := observedRange(img)
		return clipAndScale(img, min, max)
	default:
		return img.Clone()
	}
}

func observedRange(img *raster.Raster) (min, max uint8) {
	if len(img.Pix) == 0 {
		return 0, 0
	}
	min, max = img.Pix[0], img.Pix[0]
	for _, v := range img.Pix {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// clipAndScale clips every pixel to [lo,hi] then rescales that range onto
// [0,255]. lo == hi collapses the whole image to 0, the same degenerate
// behaviour as a dynamic pre-pass over a flat image.
func clipAndScale(img *raster.Raster, lo, hi uint8) *raster.Raster {
	out := raster.New(img.Width, img.Height)
	if lo >= hi {
		return out
	}
	span := int(hi) - int(lo)
	for i, v := range img.Pix {
		if v < lo {
			v = lo
		} else if v > hi {
			v = hi
		}
		out.Pix[i] = uint8((int(v) - int(lo)) * 255 / span)
	}
	return out
}
