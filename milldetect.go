package morris

// MillScope selects which mills MillCount considers.
type MillScope int

const (
	// OnRing counts only on-ring mills through the field, judged against
	// whatever color currently occupies it (0 if the field is empty).
	OnRing MillScope = iota
	// OnAndAcrossRings counts on-ring mills plus, for even-indexed
	// fields, the across-ring mill, both judged against an explicit
	// color (independent of the field's current occupant, so callers can
	// ask "would this be a mill if color were here").
	OnAndAcrossRings
)

// MillMode bundles a MillScope with the color to test against; Color is
// only read when Scope is OnAndAcrossRings.
type MillMode struct {
	Scope MillScope
	Color Color
}

// MillCount returns how many mills (0, 1 or 2) pass through pos. A corner
// field sits at the end of two on-ring windows and both are checked; a
// mid-edge field sits at the center of exactly one on-ring window and, if
// its index is even, may additionally close an across-ring mill.
func MillCount(b Board, pos FieldPos, mode MillMode) int {
	color := mode.Color
	if mode.Scope == OnRing {
		code := b.Get(pos)
		if code == Empty {
			return 0
		}
		color = Color(code)
	}

	count := onRingMillCount(b, pos, color)
	if mode.Scope == OnAndAcrossRings && acrossRingMill(b, pos, color) {
		count++
	}
	return count
}

// onRingWindows returns the on-ring triples (as index arrays) through pos.
// Mid-edge fields (even index) belong to exactly one window centered on
// them; corner fields (odd index) belong to two windows, one on each side.
func onRingWindows(index uint8) [][3]uint8 {
	m := func(d int) uint8 { return uint8((int(index) + d + 8) % 8) }
	if index%2 == 0 {
		return [][3]uint8{{m(-1), index, m(1)}}
	}
	return [][3]uint8{
		{index, m(1), m(2)},
		{m(-2), m(-1), index},
	}
}

func onRingMillCount(b Board, pos FieldPos, color Color) int {
	want := color.code()
	count := 0
	for _, window := range onRingWindows(pos.Index) {
		if b.Get(FieldPos{pos.Ring, window[0]}) == want &&
			b.Get(FieldPos{pos.Ring, window[1]}) == want &&
			b.Get(FieldPos{pos.Ring, window[2]}) == want {
			count++
		}
	}
	return count
}

func acrossRingMill(b Board, pos FieldPos, color Color) bool {
	if pos.Index%2 != 0 {
		return false
	}
	want := color.code()
	return b.Get(FieldPos{0, pos.Index}) == want &&
		b.Get(FieldPos{1, pos.Index}) == want &&
		b.Get(FieldPos{2, pos.Index}) == want
}
