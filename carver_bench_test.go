package carve

import (
	"math/rand"
	"testing"
)

func BenchmarkCumulativeEnergy(b *testing.B) {
	signal := randomSignal(b, rand.New(rand.NewSource(1)), 640, 480)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := CumulativeEnergy(signal); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLocateSeam(b *testing.B) {
	costs, err := CumulativeEnergy(randomSignal(b, rand.New(rand.NewSource(2)), 640, 480))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := LocateSeam(costs, WindowSymmetric); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProcessor_Carve(b *testing.B) {
	src := randomColor(b, 3, 320, 240)
	p := &Processor{Seams: 20, Logger: quietLogger()}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Carve(src); err != nil {
			b.Fatal(err)
		}
	}
}
