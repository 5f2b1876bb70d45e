package face

import (
	"image"

	"gocv.io/x/gocv"
)

// Sample is the averaged interior color of one tile, in BGR channel order
// (matching OpenCV Mat layout).
type Sample struct {
	B, G, R float64
}

// SampleTiles splits a decoded BGR image into a 3x3 grid and returns the
// averaged interior color of each cell in row-major order (TL through BR).
//
// Cell sizes come from integer division, so any fractional row or column
// width is truncated. Each cell is sampled from a centered sub-region of
// 20% of the cell's width and height, with a floor of 10px per dimension,
// to keep grout lines and sticker edges out of the average.
//
// Callers must reject images below the minimum size before calling; no
// bounds checking happens here. The image is never mutated.
func SampleTiles(img gocv.Mat) [9]Sample {
	cellH := img.Rows() / 3
	cellW := img.Cols() / 3

	var tiles [9]Sample
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cy := row*cellH + cellH/2
			cx := col*cellW + cellW/2

			sh := cellH / 5
			if sh < 10 {
				sh = 10
			}
			sw := cellW / 5
			if sw < 10 {
				sw = 10
			}

			region := img.Region(image.Rect(cx-sw/2, cy-sh/2, cx+sw/2, cy+sh/2))
			mean := region.Mean()
			region.Close()

			tiles[row*3+col] = Sample{B: mean.Val1, G: mean.Val2, R: mean.Val3}
		}
	}
	return tiles
}
