package face

import "testing"

func TestClassifyRulePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  float64
		want     Color
		wantRule string
	}{
		{"bright white", 240, 240, 240, White, "white"},
		{"yellow beats hue fallback", 200, 200, 100, Yellow, "yellow"},
		{"orange with significant green", 200, 120, 40, Orange, "orange-red"},
		{"orange-red split resolves red", 200, 90, 40, Red, "orange-red"},
		{"red by channel margin", 150, 60, 60, Red, "red"},
		{"green by channel margin", 60, 180, 60, Green, "green"},
		{"blue by channel margin", 40, 60, 200, Blue, "blue"},
		{"dim red via hue bucket", 120, 90, 85, Red, "hue-bucket"},
		{"dim orange via hue bucket", 120, 110, 60, Orange, "hue-bucket"},
		{"dim yellow via hue bucket", 140, 140, 60, Yellow, "hue-bucket"},
		{"teal green via hue bucket", 60, 100, 95, Green, "hue-bucket"},
		{"violet blue via hue bucket", 100, 60, 95, Blue, "hue-bucket"},
		{"murky gray defaults to white", 100, 100, 100, White, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := ClassifyRule(Sample{B: tt.b, G: tt.g, R: tt.r})
			if got != tt.want {
				t.Errorf("ClassifyRule(%v,%v,%v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
			if rule != tt.wantRule {
				t.Errorf("ClassifyRule(%v,%v,%v) fired rule %q, want %q", tt.r, tt.g, tt.b, rule, tt.wantRule)
			}
		})
	}
}

// TestClassifyTotal sweeps the channel cube and checks every sample lands
// on exactly one of the six colors.
func TestClassifyTotal(t *testing.T) {
	valid := map[Color]bool{Red: true, Green: true, Blue: true, Orange: true, Yellow: true, White: true}

	for r := 0.0; r <= 255; r += 17 {
		for g := 0.0; g <= 255; g += 17 {
			for b := 0.0; b <= 255; b += 17 {
				c := Classify(Sample{B: b, G: g, R: r})
				if !valid[c] {
					t.Fatalf("Classify(%v,%v,%v) = %v, not a cube color", r, g, b, c)
				}
			}
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	s := Sample{B: 93.4, G: 171.2, R: 88.9}
	first := Classify(s)
	for i := 0; i < 10; i++ {
		if got := Classify(s); got != first {
			t.Fatalf("Classify not deterministic: %v then %v", first, got)
		}
	}
}
