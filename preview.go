package carve

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/term"
)

const (
	defaultPreviewCols = 80
	defaultPreviewRows = 24
)

// RenderPreview draws the grid on w with 24-bit colour half block characters,
// downscaled to fit into cols x rows terminal cells. Each cell shows two pixels:
// the upper one as foreground, the lower one as background.
func RenderPreview(w io.Writer, g *Grid[color.NRGBA], cols, rows int) error {
	if g.empty() {
		return newError(KindEmptyInput, "nothing to preview")
	}
	if cols < 1 || rows < 1 {
		return newError(KindOutOfRange, "preview area %dx%d is empty", cols, rows)
	}
	img := imaging.Fit(GridToImage(g), cols, rows*2, imaging.Lanczos)
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	bw := bufio.NewWriter(w)
	for y := 0; y < dy; y += 2 {
		for x := 0; x < dx; x++ {
			top := img.NRGBAAt(x, y)
			bottom := top
			if y+1 < dy {
				bottom = img.NRGBAAt(x, y+1)
			}
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		fmt.Fprint(bw, "\x1b[0m\n")
	}
	if err := bw.Flush(); err != nil {
		return wrapError(KindIO, err, "unable to write the preview")
	}
	return nil
}

// ShowPreview renders the grid on stderr, sized to the terminal, and blocks
// until a key is pressed when stdin is an interactive terminal.
func ShowPreview(g *Grid[color.NRGBA]) error {
	cols, rows := defaultPreviewCols, defaultPreviewRows
	if fd := int(os.Stderr.Fd()); term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 1 {
			cols, rows = w, h-1
		}
	}
	if err := RenderPreview(os.Stderr, g, cols, rows); err != nil {
		return err
	}
	return waitForKey(os.Stdin, os.Stderr)
}

// waitForKey reads a single key press from in when it is a terminal.
func waitForKey(in *os.File, out io.Writer) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	fmt.Fprint(out, "Press any key to continue...")
	state, err := term.MakeRaw(fd)
	if err != nil {
		return wrapError(KindIO, err, "unable to switch the terminal to raw mode")
	}
	defer func() {
		term.Restore(fd, state)
		fmt.Fprintln(out)
	}()

	buf := make([]byte, 1)
	if _, err := in.Read(buf); err != nil {
		return wrapError(KindIO, err, "unable to read from the terminal")
	}
	return nil
}
