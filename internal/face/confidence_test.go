package face

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestConfidenceUniformFace(t *testing.T) {
	// All nine tiles the same color: center count 9 (>7) and a single
	// distinct color (<2), both penalties apply.
	var f Face
	for i := range f {
		f[i] = White
	}
	if got := Confidence(f); !almostEqual(got, 0.35) {
		t.Errorf("Confidence(uniform) = %v, want 0.35", got)
	}
}

func TestConfidenceWellFormedFace(t *testing.T) {
	// Center plus four neighbors green, remaining four tiles a mix of
	// three other colors: both counts in range, no penalty.
	f := Face{Green, Red, Green, Blue, Green, Green, White, Green, Red}
	if got := Confidence(f); !almostEqual(got, 1.0) {
		t.Errorf("Confidence(well-formed) = %v, want 1.0", got)
	}
}

func TestConfidenceRareCenter(t *testing.T) {
	// Center color appears exactly once: 0.5 penalty only.
	f := Face{Green, Green, Green, Blue, Red, Blue, Blue, Green, Blue}
	if got := Confidence(f); !almostEqual(got, 0.5) {
		t.Errorf("Confidence(rare center) = %v, want 0.5", got)
	}
}

func TestConfidenceDependsOnlyOnMultiset(t *testing.T) {
	// Two different assignments with the same center count and unique
	// count must score identically.
	a := Face{Green, Red, Green, Blue, Green, Green, White, Green, Red}
	b := Face{Red, Green, White, Green, Green, Red, Green, Blue, Green}
	if ca, cb := Confidence(a), Confidence(b); !almostEqual(ca, cb) {
		t.Errorf("Confidence differs for equivalent multisets: %v vs %v", ca, cb)
	}
}

func TestConfidenceBoundaries(t *testing.T) {
	tests := []struct {
		name string
		f    Face
		want float64
	}{
		// Center count 2, unique 2: both at the low edge of their ranges.
		{"low edges in range", Face{Green, Green, Green, Green, Red, Green, Green, Green, Red}, 1.0},
		// Center count 7, unique 3: high edge of center range.
		{"center count seven", Face{Red, Green, Green, Green, Green, Green, Green, Green, Blue}, 1.0},
		// Center count 8 is out of range.
		{"center count eight", Face{Red, Green, Green, Green, Green, Green, Green, Green, Green}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Confidence(tt.f); !almostEqual(got, tt.want) {
				t.Errorf("Confidence = %v, want %v", got, tt.want)
			}
		})
	}
}
