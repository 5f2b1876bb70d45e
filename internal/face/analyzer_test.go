package face

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func solidPNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestAnalyzeUniformWhiteImage(t *testing.T) {
	data := solidPNG(t, 90, 90, color.RGBA{240, 240, 240, 255})

	f, err := Analyze(data)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, p := range Positions() {
		if f.At(p) != White {
			t.Errorf("tile %s = %v, want White", p.Code(), f.At(p))
		}
	}
	if got := Confidence(f); got != 0.35 {
		t.Errorf("Confidence = %v, want 0.35 for a degenerate uniform face", got)
	}
}

func TestAnalyzeRejectsUndecodableBytes(t *testing.T) {
	_, err := Analyze([]byte("definitely not an image"))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Analyze error = %v, want ErrDecode", err)
	}
}

func TestAnalyzeRejectsTinyImage(t *testing.T) {
	data := solidPNG(t, 12, 12, color.RGBA{0, 200, 0, 255})
	_, err := Analyze(data)
	if !errors.Is(err, ErrTooSmall) {
		t.Errorf("Analyze error = %v, want ErrTooSmall", err)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	data := solidPNG(t, 90, 90, color.RGBA{240, 240, 240, 255})
	first, err := Analyze(data)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := Analyze(data)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if first != second {
		t.Errorf("byte-identical input diverged: %v vs %v", first, second)
	}
}
