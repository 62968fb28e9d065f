package pathopen

import (
	"image"
	"image/color"
	"testing"

	"github.com/gophotone/pathopen/internal/raster"
	"github.com/stretchr/testify/assert"
)

func rasterFrom(rows [][]uint8) *raster.Raster {
	ny := len(rows)
	nx := 0
	if ny > 0 {
		nx = len(rows[0])
	}
	r := raster.New(nx, ny)
	for y, row := range rows {
		for x, v := range row {
			r.Set(x, y, v)
		}
	}
	return r
}

func TestOpenRejectsBadOptions(t *testing.T) {
	r := raster.New(3, 3)
	_, err := Open(r, 0, 0)
	assert.Error(t, err)
	var argErr ArgumentError
	assert.ErrorAs(t, err, &argErr)

	_, err = Open(r, 1, -1)
	assert.Error(t, err)
}

func TestOpenAntiExtensive(t *testing.T) {
	r := rasterFrom([][]uint8{
		{5, 9, 1, 4},
		{2, 6, 8, 3},
		{7, 0, 5, 2},
	})
	out, err := Open(r, 3, 1)
	assert.NoError(t, err)
	for i, v := range out.Pix {
		assert.LessOrEqualf(t, v, r.Pix[i], "pixel %d", i)
	}
}

// S6 from spec.md's concrete scenarios: a 3x3 image where the vertical and
// horizontal orientations each qualify a different line, and the combined
// output is their per-pixel max.
func TestOpenCombinesOrientationsByMax(t *testing.T) {
	r := rasterFrom([][]uint8{
		{9, 9, 9},
		{0, 0, 9},
		{0, 0, 9},
	})
	out, err := Open(r, 3, 0)
	assert.NoError(t, err)
	assert.Equal(t, []uint8{
		9, 9, 9,
		0, 0, 9,
		0, 0, 9,
	}, out.Pix)
}

func TestOpenHorizontalOrientationMatchesTransposedVertical(t *testing.T) {
	r := rasterFrom([][]uint8{
		{1, 5, 5, 5, 2},
		{9, 1, 1, 1, 9},
	})
	out, err := Open(r, 3, 0)
	assert.NoError(t, err)
	// The top row's run of three 5s qualifies for the horizontal
	// orientation even though no vertical run of length 3 exists anywhere.
	assert.Equal(t, uint8(5), out.At(2, 0))
}

func TestFromImageGrayRoundTrip(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.SetGray(0, 0, color.Gray{Y: 10})
	g.SetGray(1, 0, color.Gray{Y: 20})
	g.SetGray(0, 1, color.Gray{Y: 30})
	g.SetGray(1, 1, color.Gray{Y: 40})

	r := FromImage(g)
	assert.Equal(t, []uint8{10, 20, 30, 40}, r.Pix)

	back := ToImage(r)
	assert.Equal(t, g.Pix, back.Pix)
}

func TestFromImageDownmixesColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	r := FromImage(img)
	// Pure red should be noticeably darker than white under BT.601 weights.
	assert.Less(t, r.At(0, 0), uint8(255))
	assert.Greater(t, r.At(0, 0), uint8(0))
}

func TestNormalizeStaticClipsAndScales(t *testing.T) {
	r := rasterFrom([][]uint8{{0, 20, 127, 235, 255}})
	out := Normalize(r, NormalizeOptions{Mode: NormalizeStatic, Min: DefaultStaticMin, Max: DefaultStaticMax})
	assert.Equal(t, uint8(0), out.At(0, 0))
	assert.Equal(t, uint8(0), out.At(1, 0))
	assert.Equal(t, uint8(255), out.At(3, 0))
	assert.Equal(t, uint8(255), out.At(4, 0))
}

func TestNormalizeDynamicUsesObservedRange(t *testing.T) {
	r := rasterFrom([][]uint8{{10, 20, 30}})
	out := Normalize(r, NormalizeOptions{Mode: NormalizeDynamic})
	assert.Equal(t, uint8(0), out.At(0, 0))
	assert.Equal(t, uint8(255), out.At(2, 0))
}

func TestNormalizeNoneClones(t *testing.T) {
	r := rasterFrom([][]uint8{{1, 2, 3}})
	out := Normalize(r, NormalizeOptions{})
	assert.Equal(t, r.Pix, out.Pix)
	out.Pix[0] = 99
	assert.NotEqual(t, r.Pix[0], out.Pix[0])
}

func TestOptionsValidateRejectsBadL(t *testing.T) {
	o := Options{L: 0, K: 0}
	assert.Error(t, o.validate())
}

func TestNormalizeOptionsValidateRejectsBadStaticBounds(t *testing.T) {
	o := NormalizeOptions{Mode: NormalizeStatic, Min: 200, Max: 100}
	assert.Error(t, o.Validate())
}
