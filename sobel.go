package carve

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/esimov/carve/utils"
)

// GradientProvider turns a grayscale grid into a same sized energy signal.
// Higher values mark visually important pixels which seams should avoid.
type GradientProvider interface {
	Gradient(gray *Grid[uint8]) (*Grid[uint8], error)
}

type kernel [3][3]int

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// Sobel is the default GradientProvider. It combines the horizontal and vertical
// Sobel responses with equal weights: 0.5*|gx| + 0.5*|gy|, clamped to [0, 255].
// See https://en.wikipedia.org/wiki/Sobel_operator
type Sobel struct {
	// Threshold zeroes every magnitude not exceeding it.
	Threshold int
	// BlurRadius applies a Gaussian blur of that sigma before the edge detection.
	BlurRadius int
}

var _ GradientProvider = Sobel{}

// Gradient implements GradientProvider.
func (s Sobel) Gradient(gray *Grid[uint8]) (*Grid[uint8], error) {
	if gray.empty() {
		return nil, newError(KindEmptyInput, "cannot compute the gradient of an empty grid")
	}
	src := gray
	if s.BlurRadius > 0 {
		src = blur(gray, float64(s.BlurRadius))
	}

	width, height := src.Width(), src.Height()
	dst, err := NewGrid[uint8](width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		out := dst.Row(y)
		for x := 0; x < width; x++ {
			var sumX, sumY int
			for ky := 0; ky < 3; ky++ {
				row := src.Row(reflect101(y+ky-1, height))
				for kx := 0; kx < 3; kx++ {
					px := int(row[reflect101(x+kx-1, width)])
					sumX += px * kernelX[ky][kx]
					sumY += px * kernelY[ky][kx]
				}
			}
			magnitude := utils.Clamp((utils.Abs(sumX)+utils.Abs(sumY)+1)/2, 0, 255)
			if magnitude > s.Threshold {
				out[x] = uint8(magnitude)
			}
		}
	}
	return dst, nil
}

// reflect101 mirrors an out of range index back into [0, n) without
// repeating the border pixel: -1 maps to 1 and n maps to n-2.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*n - 2 - i
		}
	}
	return i
}

// blur smooths the grayscale grid with a Gaussian kernel of the given sigma.
func blur(gray *Grid[uint8], sigma float64) *Grid[uint8] {
	img := image.NewGray(image.Rect(0, 0, gray.Width(), gray.Height()))
	for y := 0; y < gray.Height(); y++ {
		copy(img.Pix[y*img.Stride:], gray.Row(y))
	}
	blurred := imaging.Blur(img, sigma)

	dst := gray.Clone()
	for y := 0; y < dst.Height(); y++ {
		row := dst.Row(y)
		for x := range row {
			row[x] = blurred.Pix[blurred.PixOffset(x, y)]
		}
	}
	return dst
}
