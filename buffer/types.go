package buffer

// Pos is a derived (row, col) location. Row and GraphemeCol are 0-based;
// rows are separated by line-break clusters.
type Pos struct {
	Row         int
	GraphemeCol int
}

// Range is a half-open span of flat grapheme offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

// NormalizeRange orders r so that Start <= End.
func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Len returns the number of clusters covered by r.
func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

// ClampRange clamps both ends of r into [0, n].
func ClampRange(r Range, n int) Range {
	return Range{
		Start: clampInt(r.Start, 0, n),
		End:   clampInt(r.End, 0, n),
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
