package carve

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
)

// Mode selects what the processor does with each seam on the colour image.
type Mode int

const (
	// ModeRemove physically removes every seam, narrowing the image.
	ModeRemove Mode = iota
	// ModeMark paints every seam with the seam colour and keeps the original width.
	ModeMark
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeMark:
		return "mark"
	default:
		return "remove"
	}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "remove":
		return ModeRemove, nil
	case "mark":
		return ModeMark, nil
	}
	return ModeRemove, newError(KindUnsupported, "unknown carving mode %q", s)
}

// DefaultSeamColor is used by ModeMark when no colour is configured.
var DefaultSeamColor = color.NRGBA{R: 0xff, A: 0xff}

// Processor options
type Processor struct {
	// Seams is the number of vertical seams to carve. It must be lower than the image width.
	Seams int
	Mode  Mode
	// SeamColor is the marker colour in ModeMark. The zero value selects DefaultSeamColor.
	SeamColor color.NRGBA
	Window    Window
	// Gradient computes the energy signal. Nil selects a Sobel with the
	// SobelThreshold and BlurRadius below.
	Gradient       GradientProvider
	SobelThreshold int
	BlurRadius     int
	Logger         *log.Logger
}

// Result holds the carved image together with every seam that was found.
type Result struct {
	Image *Grid[color.NRGBA]
	// Seams are expressed in the coordinates of the grid they were found in,
	// which narrows by one column after every seam.
	Seams []Seam
	// Costs holds the cumulative energy of each seam.
	Costs []int
}

// Carve runs the carving loop and returns the resulting colour grid.
func (p *Processor) Carve(src *Grid[color.NRGBA]) (*Grid[color.NRGBA], error) {
	res, err := p.Run(src)
	if err != nil {
		return nil, err
	}
	return res.Image, nil
}

// Run carves p.Seams seams from src. Each iteration computes the energy of a
// grayscale tracking grid, locates the cheapest seam, then marks or removes it on
// the colour grid and removes it from the tracking grid. src is never modified.
func (p *Processor) Run(src *Grid[color.NRGBA]) (*Result, error) {
	if src.empty() {
		return nil, newError(KindEmptyInput, "source image is empty")
	}
	if p.Seams < 0 || p.Seams >= src.Width() {
		return nil, newError(KindOutOfRange, "cannot carve %d seams from an image %d pixels wide", p.Seams, src.Width())
	}
	logger := p.logger()
	gradient := p.gradient()
	start := time.Now()

	img := src.Clone()
	gray, err := Grayscale(src)
	if err != nil {
		return nil, err
	}

	// In mark mode the colour image keeps its width while the tracking grid
	// narrows, so every remaining pixel remembers its original column.
	var columns *Grid[int]
	if p.Mode == ModeMark {
		if columns, err = columnIndex(src.Width(), src.Height()); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Seams: make([]Seam, 0, p.Seams),
		Costs: make([]int, 0, p.Seams),
	}
	for i := 0; i < p.Seams; i++ {
		if gray.Width() < 2 {
			return nil, newError(KindOutOfRange, "image is already a single column wide after %d seams", i)
		}
		energy, err := gradient.Gradient(gray)
		if err != nil {
			return nil, err
		}
		if energy.empty() || energy.Width() != gray.Width() || energy.Height() != gray.Height() {
			return nil, newError(KindShapeMismatch, "gradient changed the grid shape")
		}
		costs, err := CumulativeEnergy(energy)
		if err != nil {
			return nil, err
		}
		seam, err := LocateSeam(costs, p.Window)
		if err != nil {
			return nil, err
		}
		cost := costs.At(seam[0], costs.Height()-1)

		switch p.Mode {
		case ModeMark:
			if img, err = MarkSeam(img, originalSeam(columns, seam), p.seamColor()); err != nil {
				return nil, err
			}
			if columns, err = RemoveSeam(columns, seam); err != nil {
				return nil, err
			}
		default:
			if img, err = RemoveSeam(img, seam); err != nil {
				return nil, err
			}
		}
		if gray, err = RemoveSeam(gray, seam); err != nil {
			return nil, err
		}

		res.Seams = append(res.Seams, seam)
		res.Costs = append(res.Costs, cost)
		logger.Debug("seam carved", "seam", i+1, "cost", cost, "width", gray.Width())
	}
	res.Image = img

	stats := res.Stats()
	logger.Info("carving done",
		"mode", p.Mode,
		"seams", p.Seams,
		"width", img.Width(),
		"height", img.Height(),
		"mean_cost", stats.Mean,
		"max_cost", stats.Max,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return res, nil
}

func (p *Processor) logger() *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return log.Default()
}

func (p *Processor) gradient() GradientProvider {
	if p.Gradient != nil {
		return p.Gradient
	}
	return Sobel{Threshold: p.SobelThreshold, BlurRadius: p.BlurRadius}
}

func (p *Processor) seamColor() color.NRGBA {
	if p.SeamColor == (color.NRGBA{}) {
		return DefaultSeamColor
	}
	return p.SeamColor
}

// columnIndex returns a grid whose cells hold their own column number.
func columnIndex(width, height int) (*Grid[int], error) {
	g, err := NewGrid[int](width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		row := g.Row(y)
		for x := range row {
			row[x] = x
		}
	}
	return g, nil
}

// originalSeam translates a seam found in the narrowed grid back to the
// columns of the full width image.
func originalSeam(columns *Grid[int], s Seam) Seam {
	out := make(Seam, len(s))
	for i, x := range s {
		out[i] = columns.At(x, len(s)-1-i)
	}
	return out
}
