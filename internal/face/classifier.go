package face

import (
	"math"

	"cube-scan/pkg/colorutil"
)

// channels carries one sample's raw channel values (0-255) together with
// the derived HSV representation (OpenCV convention, hue 0-180).
type channels struct {
	r, g, b float64
	h, s, v float64
}

// rule is one step of the classification cascade. Rule order is
// semantically load-bearing: the first rule that matches decides the
// color and no later rule is consulted.
type rule struct {
	name  string
	apply func(c channels) (Color, bool)
}

// cascade holds the ordered heuristic rules. Relative channel comparisons
// rather than absolute ranges keep the cascade usable across exposure and
// white-balance drift; the orange/red split and the hue buckets handle the
// hues those comparisons leave ambiguous.
var cascade = []rule{
	{"white", func(c channels) (Color, bool) {
		return White, c.s < 50 && c.v > 150
	}},
	{"yellow", func(c channels) (Color, bool) {
		return Yellow, c.r > 150 && c.g > 150 && c.b < 130 && c.s > 40
	}},
	{"orange-red", func(c channels) (Color, bool) {
		if c.r > c.g && c.g > c.b && c.r > 130 && c.g > 80 && c.s > 80 {
			if c.g > 100 {
				return Orange, true
			}
			return Red, true
		}
		return Red, false
	}},
	{"red", func(c channels) (Color, bool) {
		return Red, c.r > math.Max(c.g, c.b)+30 && c.r > 100
	}},
	{"green", func(c channels) (Color, bool) {
		return Green, c.g > math.Max(c.r, c.b)+20 && c.g > 80
	}},
	{"blue", func(c channels) (Color, bool) {
		return Blue, c.b > math.Max(c.r, c.g)+20 && c.b > 80
	}},
	{"hue-bucket", func(c channels) (Color, bool) {
		if c.s <= 30 {
			return White, false
		}
		switch {
		case c.h < 15 || c.h > 165:
			return Red, true
		case c.h < 30:
			return Orange, true
		case c.h < 75:
			return Yellow, true
		case c.h < 150:
			return Green, true
		default:
			return Blue, true
		}
	}},
}

// Classify maps one tile sample to a cube color. The cascade is total:
// every possible channel triple yields exactly one color.
func Classify(s Sample) Color {
	c, _ := ClassifyRule(s)
	return c
}

// ClassifyRule classifies a sample and also reports the name of the rule
// that decided it ("default" when the cascade fell through to white).
func ClassifyRule(s Sample) (Color, string) {
	h, sat, v := colorutil.BGRToHSV(s.B, s.G, s.R)
	ch := channels{r: s.R, g: s.G, b: s.B, h: h, s: sat, v: v}

	for _, r := range cascade {
		if color, ok := r.apply(ch); ok {
			return color, r.name
		}
	}
	return White, "default"
}
