// Command facetest runs cube face analysis on an image file and prints
// the per-tile classification and confidence.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"

	"cube-scan/internal/face"
)

func main() {
	imagePath := flag.String("image", "", "Path to cube face image (TIFF, PNG, or JPEG)")
	threshold := flag.Float64("threshold", 0.7, "Confidence threshold")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: facetest -image <path> [-threshold 0.7]")
		os.Exit(1)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	cfg, format, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, cfg.Width, cfg.Height)

	data, err := os.ReadFile(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", err)
		os.Exit(1)
	}

	result, err := face.Analyze(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nClassified face:")
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			p := face.Position(row*3 + col)
			fmt.Printf("  %-2s=%s", p.Code(), result.At(p).Code())
		}
		fmt.Println()
	}

	score := face.Confidence(result)
	fmt.Printf("\nConfidence: %.2f (threshold %.2f)\n", score, *threshold)
	if score >= *threshold {
		fmt.Println("CV result would be returned directly.")
	} else {
		fmt.Println("Fallback would be consulted if configured.")
	}
}
