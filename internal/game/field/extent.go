package field

// Extent is an inclusive range of coordinates along one axis.
//
// Lo <= Hi always holds for extents built with NewExtent, and
// Overlaps relies on it.
type Extent struct {
	Lo, Hi int
}

func NewExtent(a, b int) Extent {
	return Extent{Lo: min(a, b), Hi: max(a, b)}
}

func (e Extent) Covers(v int) bool {
	return v >= e.Lo && v <= e.Hi
}

// Three checks are enough for well-formed extents: if neither end of
// other lies inside e, other either misses e or contains all of it,
// and then it contains e.Lo.
func (e Extent) Overlaps(other Extent) bool {
	return e.Covers(other.Lo) ||
		e.Covers(other.Hi) ||
		other.Covers(e.Lo)
}

// Reports whether two ships share at least one cell.
func Intersects(a, b Ship) bool {
	if a.Orientation == b.Orientation {
		if a.Horizontal() && a.Location.Row != b.Location.Row {
			return false
		}
		if a.Vertical() && a.Location.Col != b.Location.Col {
			return false
		}
		return a.Extent().Overlaps(b.Extent())
	}

	if a.Horizontal() {
		return a.Extent().Covers(b.Location.Col) && b.Extent().Covers(a.Location.Row)
	}

	return a.Extent().Covers(b.Location.Row) && b.Extent().Covers(a.Location.Col)
}
