package face

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Outlier describes a tile whose color label occurs nowhere else on the
// face, paired with the tile it most closely resembles. It is diagnostic
// output only; labels are never rewritten from it.
type Outlier struct {
	Tile    Position
	Color   Color
	Nearest Position
	Dist    float64
}

// similarityThreshold is the BGR distance under which two tile samples
// count as visually indistinguishable.
const similarityThreshold = 30.0

// Outliers reports non-center tiles whose color appears exactly once on
// the face yet whose sample sits within similarityThreshold of a tile
// carrying a repeated color. When the center's color already repeats three
// or more times the classification is considered settled and nothing is
// reported.
func Outliers(f Face, samples [9]Sample) []Outlier {
	counts := make(map[Color]int, 6)
	for _, c := range f {
		counts[c]++
	}
	if counts[f.At(Center)] >= 3 {
		return nil
	}

	var out []Outlier
	for i := range f {
		p := Position(i)
		if p == Center || counts[f[i]] != 1 {
			continue
		}

		minDist := math.Inf(1)
		nearest := Center
		for j := range f {
			if j == i {
				continue
			}
			d := bgrDistance(samples[i], samples[j])
			if d < minDist {
				minDist = d
				nearest = Position(j)
			}
		}

		if minDist < similarityThreshold && counts[f.At(nearest)] > 1 {
			out = append(out, Outlier{Tile: p, Color: f[i], Nearest: nearest, Dist: minDist})
		}
	}
	return out
}

func bgrDistance(a, b Sample) float64 {
	return floats.Distance([]float64{a.B, a.G, a.R}, []float64{b.B, b.G, b.R}, 2)
}
