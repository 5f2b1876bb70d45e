// Command colortest classifies a single color triple and reports which
// cascade rule decided it. Useful when tuning thresholds against sampled
// tile values.
package main

import (
	"flag"
	"fmt"

	"cube-scan/internal/face"
	"cube-scan/pkg/colorutil"
)

func main() {
	r := flag.Float64("r", 0, "Red channel (0-255)")
	g := flag.Float64("g", 0, "Green channel (0-255)")
	b := flag.Float64("b", 0, "Blue channel (0-255)")
	flag.Parse()

	h, s, v := colorutil.RGBToHSV(*r, *g, *b)
	fmt.Printf("RGB=(%.0f,%.0f,%.0f)  HSV=(%.1f,%.1f,%.1f)\n", *r, *g, *b, h, s, v)

	color, rule := face.ClassifyRule(face.Sample{B: *b, G: *g, R: *r})
	fmt.Printf("-> %s (%s) via rule %q\n", color, color.Code(), rule)
}
