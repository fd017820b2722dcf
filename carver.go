package carve

import (
	"math"

	"github.com/esimov/carve/utils"
)

// Window selects how the seam locator clamps the three column neighbourhood
// it inspects when walking up from one row to the next.
type Window int

const (
	// WindowSymmetric inspects {prev-1, prev, prev+1} clamped to [0, width).
	WindowSymmetric Window = iota
	// WindowLegacy clamps the upper bound to width-1, which makes the
	// rightmost column unreachable once the walk has started. It exists
	// only to reproduce the output of older tooling bit for bit.
	WindowLegacy
)

// String implements fmt.Stringer.
func (w Window) String() string {
	switch w {
	case WindowLegacy:
		return "legacy"
	default:
		return "symmetric"
	}
}

// ParseWindow converts a window name into a Window.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "", "symmetric":
		return WindowSymmetric, nil
	case "legacy":
		return WindowLegacy, nil
	}
	return WindowSymmetric, newError(KindUnsupported, "unknown seam window %q", s)
}

// CumulativeEnergy computes the minimum energy M for all possible connected seams
// ending at each cell (x, y):
//   - the top row has nothing above it, so its cost is the signal itself;
//   - every other cell sums its own signal with the cheapest of the (up to three)
//     neighbours of the previous row.
//
// Rows are processed strictly top to bottom. Sums saturate at math.MaxInt.
func CumulativeEnergy(signal *Grid[uint8]) (*Grid[int], error) {
	if signal.empty() {
		return nil, newError(KindEmptyInput, "energy signal is empty")
	}
	width, height := signal.Width(), signal.Height()
	costs, err := NewGrid[int](width, height)
	if err != nil {
		return nil, err
	}

	top := costs.Row(0)
	for x, v := range signal.Row(0) {
		top[x] = int(v)
	}

	for y := 1; y < height; y++ {
		prev, curr, sig := costs.Row(y-1), costs.Row(y), signal.Row(y)
		for x := 0; x < width; x++ {
			min := prev[x]
			// Do not look past the left edge.
			if x > 0 && prev[x-1] < min {
				min = prev[x-1]
			}
			// Do not look past the right edge.
			if x < width-1 && prev[x+1] < min {
				min = prev[x+1]
			}
			curr[x] = addSaturated(min, int(sig[x]))
		}
	}
	return costs, nil
}

// LocateSeam walks the cumulative cost grid from the bottom row up and returns
// the lowest energy vertical seam. The returned seam is ordered bottom row first.
// Ties always resolve to the leftmost candidate.
func LocateSeam(costs *Grid[int], window Window) (Seam, error) {
	if costs.empty() {
		return nil, newError(KindEmptyInput, "cost grid is empty")
	}
	width, height := costs.Width(), costs.Height()
	seam := make(Seam, 0, height)

	px := minIndex(costs.Row(height-1), 0, width)
	seam = append(seam, px)

	for y := height - 2; y >= 0; y-- {
		lo := utils.Max(px-1, 0)
		hi := utils.Min(px+2, width)
		if window == WindowLegacy {
			hi = utils.Min(px+2, width-1)
		}
		// The legacy window is empty for single column grids.
		if lo < hi {
			px = minIndex(costs.Row(y), lo, hi)
		}
		seam = append(seam, px)
	}
	return seam, nil
}

// minIndex returns the index of the strictly smallest value of row[lo:hi],
// the first one encountered in case of ties.
func minIndex(row []int, lo, hi int) int {
	idx, min := lo, math.MaxInt
	for x := lo; x < hi; x++ {
		if row[x] < min {
			min = row[x]
			idx = x
		}
	}
	return idx
}

func addSaturated(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
