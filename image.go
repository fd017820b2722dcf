package carve

import (
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp" // register the webp decoder
)

// Decode reads an image in any registered format, honouring the EXIF orientation tag.
func Decode(r io.Reader) (*Grid[color.NRGBA], error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, wrapError(KindIO, err, "could not decode the source image")
	}
	return ImageToGrid(img)
}

// Encode writes the grid to w in the given format ("jpg", "png", "bmp", "gif", "tif").
func Encode(w io.Writer, g *Grid[color.NRGBA], format string) error {
	if g.empty() {
		return newError(KindEmptyInput, "cannot encode an empty grid")
	}
	img := GridToImage(g)

	if f := strings.ToLower(strings.TrimPrefix(format, ".")); f == "bmp" {
		if err := bmp.Encode(w, img); err != nil {
			return wrapError(KindIO, err, "could not encode bmp image")
		}
		return nil
	}
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return wrapError(KindUnsupported, err, "unsupported image format %q", format)
	}
	if err := imaging.Encode(w, img, f, imaging.JPEGQuality(100)); err != nil {
		return wrapError(KindIO, err, "could not encode %s image", f)
	}
	return nil
}

// FormatFromPath returns the encoding format implied by the file extension.
// Paths without an extension default to jpg.
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "jpg"
	}
	return ext
}

// ImageToGrid converts any image type to a colour grid with its origin at (0, 0).
func ImageToGrid(img image.Image) (*Grid[color.NRGBA], error) {
	if img == nil || img.Bounds().Empty() {
		return nil, newError(KindEmptyInput, "source image is empty")
	}
	src := imaging.Clone(img)
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	g, err := NewGrid[color.NRGBA](dx, dy)
	if err != nil {
		return nil, err
	}
	for y := 0; y < dy; y++ {
		row := g.Row(y)
		i := src.PixOffset(0, y)
		for x := range row {
			row[x] = color.NRGBA{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2], A: src.Pix[i+3]}
			i += 4
		}
	}
	return g, nil
}

// GridToImage converts a colour grid back to an *image.NRGBA.
func GridToImage(g *Grid[color.NRGBA]) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y := 0; y < g.Height(); y++ {
		i := dst.PixOffset(0, y)
		for _, c := range g.Row(y) {
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = c.A
			i += 4
		}
	}
	return dst
}
