package face

// Confidence scores how plausible a classified face is, in [0,1].
//
// A real cube face shows one dominant color (the center plus several
// neighbors) and a bounded handful of other sticker colors. A face where
// the center's color appears almost nowhere or everywhere, or where the
// distinct-color count is degenerate, points at sensor noise or a bad
// crop rather than a cube. Both penalties compound.
func Confidence(f Face) float64 {
	counts := make(map[Color]int, 6)
	for _, c := range f {
		counts[c]++
	}

	centerCount := counts[f.At(Center)]
	uniqueCount := len(counts)

	score := 1.0
	if centerCount < 2 || centerCount > 7 {
		score *= 0.5
	}
	if uniqueCount < 2 || uniqueCount > 6 {
		score *= 0.7
	}
	return score
}
