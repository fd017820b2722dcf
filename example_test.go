package carve_test

import (
	"fmt"
	"image/color"

	"github.com/esimov/carve"
)

func ExampleCumulativeEnergy() {
	signal, _ := carve.GridFromRows([][]uint8{
		{1, 1, 1},
		{1, 9, 1},
		{1, 1, 1},
	})
	costs, _ := carve.CumulativeEnergy(signal)
	seam, _ := carve.LocateSeam(costs, carve.WindowSymmetric)

	fmt.Println(costs.Rows())
	fmt.Println(seam.TopDown())
	// Output:
	// [[1 1 1] [2 10 2] [3 3 3]]
	// [0 0 0]
}

func ExampleProcessor_Carve() {
	img, _ := carve.NewGrid[color.NRGBA](16, 9)
	p := &carve.Processor{Seams: 6}

	out, err := p.Carve(img)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%dx%d\n", out.Width(), out.Height())
	// Output: 10x9
}

func ExampleIsKind() {
	img, _ := carve.NewGrid[color.NRGBA](4, 4)
	_, err := (&carve.Processor{Seams: 4}).Carve(img)

	fmt.Println(carve.IsKind(err, carve.KindOutOfRange))
	// Output: true
}
