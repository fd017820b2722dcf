package carve

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview_Render(t *testing.T) {
	g := uniformColor(t, 4, 4, color.NRGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, RenderPreview(&buf, g, 4, 2))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Equal(t, 8, strings.Count(out, "▀"))
	assert.Contains(t, out, "\x1b[38;2;255;0;0m\x1b[48;2;255;0;0m")
}

func TestPreview_RenderFitsArea(t *testing.T) {
	g := randomColor(t, 31, 40, 40)

	var buf bytes.Buffer
	require.NoError(t, RenderPreview(&buf, g, 10, 5))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 10, strings.Count(line, "▀"))
	}
}

func TestPreview_RenderOddHeight(t *testing.T) {
	g := uniformColor(t, 3, 3, white)

	var buf bytes.Buffer
	require.NoError(t, RenderPreview(&buf, g, 3, 2))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestPreview_RenderErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, IsKind(RenderPreview(&buf, nil, 10, 10), KindEmptyInput))
	assert.True(t, IsKind(RenderPreview(&buf, uniformColor(t, 2, 2, white), 0, 10), KindOutOfRange))
}
