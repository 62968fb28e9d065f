// Package pathopen computes a grayscale morphological path opening: each
// output pixel receives the largest threshold at which it still belongs to
// some path of at least L on-pixels, allowing at most K gaps, in one of four
// fixed orientations (vertical, horizontal, and the two diagonals).
//
// The core sweep lives in internal/engine; this package is the thin
// four-orientation driver plus the options, validation, and optional
// contrast-normalisation pre-pass around it, in the same shape as the
// teacher's Options/Encode surface: a plain options struct validated once
// at the entry point, no functional-options builder, no package state.
package pathopen

// Options bundles the path-opening parameters. The zero value is not valid
// on its own (L defaults to 0, which validate rejects); callers always set
// L and K explicitly.
//
// Contrast normalization is deliberately not a field here: it is a
// pre-pass over the raster handed to Open, not a sweep parameter, so
// callers that want it call NormalizeOptions.Validate() and Normalize
// themselves first (see cmd/pathopen's run()) and pass the result to
// Open as the raster argument.
type Options struct {
	// L is the minimum path length, in pixels. Must be >= 1.
	L int
	// K is the maximum number of off-pixel gaps tolerated along a
	// qualifying path. Must be >= 0.
	K int
}

func (o Options) validate() error {
	if o.L < 1 {
		return argErrorf("pathopen: L must be >= 1, got %d", o.L)
	}
	if o.K < 0 {
		return argErrorf("pathopen: K must be >= 0, got %d", o.K)
	}
	return nil
}
