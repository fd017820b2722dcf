/*
Package carve is a content aware image width reduction library based on seam carving.

A seam is a connected path of pixels running from the top of the image to the bottom,
one pixel per row. Each iteration computes an energy signal from a grayscale copy of
the image, accumulates it from top to bottom into a cost grid, traces the cheapest
seam back from the bottom row and either removes it from the image or paints it with
a marker colour, keeping the original width.

The building blocks are exported individually:

	signal, _ := carve.Sobel{}.Gradient(gray)
	costs, _ := carve.CumulativeEnergy(signal)
	seam, _ := carve.LocateSeam(costs, carve.WindowSymmetric)
	narrower, _ := carve.RemoveSeam(img, seam)

Most callers only need a Processor:

	p := &carve.Processor{Seams: 40}
	if err := p.ProcessFile("in.jpg", "out.png"); err != nil {
		log.Fatal(err)
	}

The package also ships a command line interface. To check the supported flags type:

	$ carve --help
*/
package carve
