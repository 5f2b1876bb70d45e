// Package face implements adaptive color classification of a photographed
// Rubik's cube face: tile sampling, a heuristic color cascade, and a
// confidence score over the classified result.
package face

import "fmt"

// Color is one of the six cube sticker colors. The set is closed and the
// one-letter codes are a wire contract shared with the API layer; do not
// extend or reorder.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Orange
	Yellow
	White
)

var colorCodes = [...]string{"R", "G", "B", "O", "Y", "W"}
var colorNames = [...]string{"Red", "Green", "Blue", "Orange", "Yellow", "White"}

// Code returns the canonical one-letter code used on the wire.
func (c Color) Code() string {
	if c < 0 || int(c) >= len(colorCodes) {
		return "?"
	}
	return colorCodes[c]
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor maps a one-letter code to its Color.
func ParseColor(code string) (Color, error) {
	for i, cc := range colorCodes {
		if cc == code {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("invalid cube color %q", code)
}

// Position identifies one of the nine tiles of a face, in fixed row-major
// order. The order is part of the contract surfaced to callers.
type Position int

const (
	TopLeft Position = iota
	TopCenter
	TopRight
	MiddleLeft
	Center
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

var positionCodes = [...]string{"TL", "TC", "TR", "ML", "C", "MR", "BL", "BC", "BR"}

// Code returns the two-letter position key used on the wire ("C" for the
// center tile).
func (p Position) Code() string {
	if p < 0 || int(p) >= len(positionCodes) {
		return "?"
	}
	return positionCodes[p]
}

func (p Position) String() string { return p.Code() }

// Positions returns all nine tile positions in row-major order.
func Positions() [9]Position {
	var ps [9]Position
	for i := range ps {
		ps[i] = Position(i)
	}
	return ps
}

// Face maps each of the nine tile positions to exactly one color,
// indexed by Position.
type Face [9]Color

// At returns the color classified at position p.
func (f Face) At(p Position) Color { return f[p] }

// Codes returns the wire representation: position key to one-letter
// color code, nine entries.
func (f Face) Codes() map[string]string {
	out := make(map[string]string, len(f))
	for i, c := range f {
		out[Position(i).Code()] = c.Code()
	}
	return out
}
