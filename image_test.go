package carve

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_ToGridResetsOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(-1, -1, 4, 3))
	img.Set(-1, -1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(3, 2, color.NRGBA{R: 40, G: 50, B: 60, A: 255})

	g, err := ImageToGrid(img)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, g.At(0, 0))
	assert.Equal(t, color.NRGBA{R: 40, G: 50, B: 60, A: 255}, g.At(4, 3))
}

func TestImage_GridRoundTrip(t *testing.T) {
	src := randomColor(t, 11, imgWidth, imgHeight)
	g, err := ImageToGrid(GridToImage(src))
	require.NoError(t, err)
	if diff := cmp.Diff(src.Rows(), g.Rows()); diff != "" {
		t.Errorf("grid changed across image conversion (-want +got):\n%s", diff)
	}
}

func TestImage_ToGridEmpty(t *testing.T) {
	_, err := ImageToGrid(image.NewNRGBA(image.Rect(0, 0, 0, 5)))
	assert.True(t, IsKind(err, KindEmptyInput))

	_, err = ImageToGrid(nil)
	assert.True(t, IsKind(err, KindEmptyInput))
}

func TestImage_EncodeDecodeLossless(t *testing.T) {
	src := randomColor(t, 12, imgWidth, imgHeight)

	for _, format := range []string{"png", "bmp", ".PNG"} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, src, format), format)

		out, err := Decode(&buf)
		require.NoError(t, err, format)
		if diff := cmp.Diff(src.Rows(), out.Rows()); diff != "" {
			t.Errorf("%s round trip mismatch (-want +got):\n%s", format, diff)
		}
	}
}

func TestImage_EncodeLossy(t *testing.T) {
	src := randomColor(t, 13, imgWidth, imgHeight)

	for _, format := range []string{"jpg", "gif", "tif"} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, src, format), format)

		out, err := Decode(&buf)
		require.NoError(t, err, format)
		assert.Equal(t, imgWidth, out.Width(), format)
		assert.Equal(t, imgHeight, out.Height(), format)
	}
}

func TestImage_EncodeErrors(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, randomColor(t, 14, 2, 2), "psd")
	assert.True(t, IsKind(err, KindUnsupported))

	err = Encode(&buf, nil, "png")
	assert.True(t, IsKind(err, KindEmptyInput))
}

func TestImage_DecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	assert.True(t, IsKind(err, KindIO))
}

func TestImage_FormatFromPath(t *testing.T) {
	assert.Equal(t, "png", FormatFromPath("out/carved.PNG"))
	assert.Equal(t, "jpeg", FormatFromPath("carved.jpeg"))
	assert.Equal(t, "jpg", FormatFromPath("carved"))
}
