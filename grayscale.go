package carve

import (
	"image/color"
)

// Grayscale converts a colour grid to its Rec. 601 luma.
func Grayscale(src *Grid[color.NRGBA]) (*Grid[uint8], error) {
	if src.empty() {
		return nil, newError(KindEmptyInput, "cannot convert an empty grid to grayscale")
	}
	dst, err := NewGrid[uint8](src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	for y := 0; y < src.Height(); y++ {
		in, out := src.Row(y), dst.Row(y)
		for x, c := range in {
			lum := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
			out[x] = uint8(lum + 0.5)
		}
	}
	return dst, nil
}
