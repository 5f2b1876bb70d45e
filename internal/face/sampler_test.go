package face

import (
	"image"
	"math"
	"testing"

	"gocv.io/x/gocv"
)

// paintRect fills a rectangle of img with a solid BGR color.
func paintRect(img *gocv.Mat, rect image.Rectangle, b, g, r float64) {
	fill := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(b, g, r, 0), rect.Dy(), rect.Dx(), gocv.MatTypeCV8UC3)
	defer fill.Close()
	region := img.Region(rect)
	defer region.Close()
	fill.CopyTo(&region)
}

func TestSampleTilesOrderAndValues(t *testing.T) {
	img := gocv.NewMatWithSize(90, 90, gocv.MatTypeCV8UC3)
	defer img.Close()

	// Distinct color per cell so sample order is observable.
	colors := [9][3]float64{
		{10, 0, 0}, {0, 20, 0}, {0, 0, 30},
		{40, 40, 0}, {0, 50, 50}, {60, 0, 60},
		{70, 70, 70}, {80, 0, 0}, {0, 90, 0},
	}
	for i, c := range colors {
		row, col := i/3, i%3
		paintRect(&img, image.Rect(col*30, row*30, (col+1)*30, (row+1)*30), c[0], c[1], c[2])
	}

	samples := SampleTiles(img)
	for i, c := range colors {
		s := samples[i]
		if math.Abs(s.B-c[0]) > 0.5 || math.Abs(s.G-c[1]) > 0.5 || math.Abs(s.R-c[2]) > 0.5 {
			t.Errorf("tile %s: sample (%.1f,%.1f,%.1f), want (%.0f,%.0f,%.0f)",
				Position(i).Code(), s.B, s.G, s.R, c[0], c[1], c[2])
		}
	}
}

func TestSampleTilesTruncatesResidualPixels(t *testing.T) {
	// Dimensions not divisible by 3: cell sizes come from integer
	// division and the sampler must still produce nine interior samples.
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(120, 130, 140, 0), 91, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	samples := SampleTiles(img)
	for i, s := range samples {
		if math.Abs(s.B-120) > 0.5 || math.Abs(s.G-130) > 0.5 || math.Abs(s.R-140) > 0.5 {
			t.Errorf("tile %s: sample (%.1f,%.1f,%.1f), want (120,130,140)",
				Position(i).Code(), s.B, s.G, s.R)
		}
	}
}

func TestSampleTilesAveragesInteriorOnly(t *testing.T) {
	// Paint a contrasting border along the top-left cell's edges; the
	// centered 20% sub-region must not see it.
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 200, 0, 0), 90, 90, gocv.MatTypeCV8UC3)
	defer img.Close()

	paintRect(&img, image.Rect(0, 0, 30, 4), 0, 0, 0)
	paintRect(&img, image.Rect(0, 0, 4, 30), 0, 0, 0)

	samples := SampleTiles(img)
	if s := samples[TopLeft]; math.Abs(s.G-200) > 0.5 {
		t.Errorf("border leaked into TL sample: (%.1f,%.1f,%.1f)", s.B, s.G, s.R)
	}
}
