package pathopen

import (
	"image"
	"image/color"

	"github.com/gophotone/pathopen/internal/raster"
)

// FromImage converts any image.Image into a Raster, downmixing to
// grayscale with ITU-R BT.601 luminance weights when the source isn't
// already gray. This mirrors how the teacher's writer.go downmixes color
// images to a Y plane before DCT (grayToY/rgbaToYCbCr) rather than
// averaging channels flatly.
func FromImage(img image.Image) *raster.Raster {
	b := img.Bounds()
	out := raster.New(b.Dx(), b.Dy())

	if gray, ok := img.(*image.Gray); ok && gray.Rect == b {
		for y := 0; y < b.Dy(); y++ {
			srcOff := gray.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Width:(y+1)*out.Width], gray.Pix[srcOff:srcOff+out.Width])
		}
		return out
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, toGray(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return out
}

// toGray downmixes one pixel using ITU-R BT.601 luminance coefficients
// (299/587/114 in fixed point), the same weighting family the teacher's
// YCbCr conversion applies, adapted here to a single gray output channel
// instead of a chroma pair.
func toGray(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	// r, g, b are 16-bit (0..65535); weight then rescale to 8-bit.
	y := (299*r + 587*g + 114*b) / 1000
	return uint8(y >> 8)
}

// ToImage converts a Raster back into a standard library *image.Gray.
func ToImage(r *raster.Raster) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		srcOff := y * r.Width
		dstOff := img.PixOffset(0, y)
		copy(img.Pix[dstOff:dstOff+r.Width], r.Pix[srcOff:srcOff+r.Width])
	}
	return img
}
