package face

import (
	"errors"
	"fmt"
	"log/slog"

	"gocv.io/x/gocv"
)

// ErrDecode reports image bytes that cannot be interpreted as a color
// raster.
var ErrDecode = errors.New("cannot decode image")

// ErrTooSmall reports an image below the minimum resolution for reliable
// tile sampling.
var ErrTooSmall = errors.New("image below minimum size")

// MinImageDim is the smallest width/height accepted for analysis. Below
// this the centered sample sub-regions would leave image bounds.
const MinImageDim = 30

// Analyze decodes raw image bytes and classifies the nine tiles of the
// cube face they show, in fixed row-major order. The input is treated as
// an already-cropped, axis-aligned face photograph.
func Analyze(data []byte) (Face, error) {
	img, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return Face{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer img.Close()
	if img.Empty() {
		return Face{}, ErrDecode
	}
	if img.Cols() < MinImageDim || img.Rows() < MinImageDim {
		return Face{}, fmt.Errorf("%w: %dx%d", ErrTooSmall, img.Cols(), img.Rows())
	}

	samples := SampleTiles(img)

	var f Face
	for i, s := range samples {
		f[i] = Classify(s)
	}

	for _, o := range Outliers(f, samples) {
		slog.Debug("rare tile color resembles a neighbor",
			"tile", o.Tile.Code(),
			"color", o.Color.Code(),
			"nearest", o.Nearest.Code(),
			"dist", fmt.Sprintf("%.1f", o.Dist),
		)
	}

	return f, nil
}
