// Package morris implements the endgame position database generator for
// Nine Men's Morris: a bit-packed board, the 16-element symmetry group used
// to canonicalize positions, move generation (forward and backward), and a
// parallel retrograde fixed-point engine that classifies every reachable
// late-game board as WON, LOST or DRAW/UNKNOWN for White.
package morris

import "github.com/pkg/errors"

// Each ring is a 16-bit word holding 8 fields, 2 bits per field:
// ring[0] = inner ring, ring[1] = middle ring, ring[2] = outer ring.
// Field index runs clockwise from the top-middle, 0..=7. Odd indices are
// corners; even indices are mid-edge fields and may carry an across-ring
// mill.
//
//	ring layout (index -> bit offset):
//	0: bits 0-1    4: bits 8-9
//	1: bits 2-3    5: bits 10-11
//	2: bits 4-5    6: bits 12-13
//	3: bits 6-7    7: bits 14-15
type Board struct {
	ring [3]uint16
}

// FieldCode is the 2-bit value stored per field.
type FieldCode uint8

const (
	Empty   FieldCode = 0b00
	fcWhite FieldCode = 0b01
	fcBlack FieldCode = 0b10
	illegal FieldCode = 0b11
)

const fieldMask uint16 = 0b11

// Color identifies a player. White and Black are involutive under Not.
type Color uint8

const (
	White Color = 1
	Black Color = 2
)

// Not returns the opposing color.
func (c Color) Not() Color {
	return 3 - c
}

// code returns the 2-bit field code for the given color.
func (c Color) code() FieldCode {
	return FieldCode(c)
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// FieldPos identifies one of the 24 fields by ring (0..=2) and index
// (0..=7, clockwise from top-middle).
type FieldPos struct {
	Ring  uint8
	Index uint8
}

// bitOffset returns the shift amount for this field's 2-bit window.
func (p FieldPos) bitOffset() uint {
	return uint(p.Index) * 2
}

// IsCorner reports whether the field is an odd-indexed corner field. Even
// indices are mid-edge fields that participate in across-ring mills.
func (p FieldPos) IsCorner() bool {
	return p.Index%2 == 1
}

// OnRingNeighbors returns the two on-ring neighbors of p, in clockwise order
// (counter-clockwise neighbor first).
func (p FieldPos) OnRingNeighbors() (FieldPos, FieldPos) {
	return FieldPos{p.Ring, (p.Index + 7) % 8}, FieldPos{p.Ring, (p.Index + 1) % 8}
}

// AcrossRingNeighbors returns the fields on adjacent rings with the same
// index, if any. Only even (mid-edge) indices have across-ring neighbors;
// the middle ring (1) has two, the inner and outer rings (0, 2) have one.
func (p FieldPos) AcrossRingNeighbors() []FieldPos {
	if p.Index%2 != 0 {
		return nil
	}
	switch p.Ring {
	case 0:
		return []FieldPos{{1, p.Index}}
	case 2:
		return []FieldPos{{1, p.Index}}
	default: // ring 1
		return []FieldPos{{0, p.Index}, {2, p.Index}}
	}
}

// PrevRing and NextRing describe the ring ordering used by the symmetry
// group's ring-swap generator (only the 0<->2 swap is an actual symmetry;
// ring 1 is always fixed).
func (p FieldPos) PrevRing() uint8 { return (p.Ring + 2) % 3 }
func (p FieldPos) NextRing() uint8 { return (p.Ring + 1) % 3 }

// Get returns the 2-bit code stored at pos.
func (b Board) Get(pos FieldPos) FieldCode {
	return FieldCode((b.ring[pos.Ring] >> pos.bitOffset()) & fieldMask)
}

// Set writes code at pos, enforcing that a color may only be written to an
// empty field and that Empty may only be written over an occupied field.
// Violating this precondition is an InvariantViolation.
func (b *Board) Set(pos FieldPos, code FieldCode) error {
	current := b.Get(pos)
	if code == Empty {
		if current == Empty {
			return errors.Wrapf(ErrInvariantViolation, "clearing already-empty field %+v", pos)
		}
	} else if current != Empty {
		return errors.Wrapf(ErrInvariantViolation, "writing color %v onto occupied field %+v", code, pos)
	}
	b.setUnchecked(pos, code)
	return nil
}

// setUnchecked writes code at pos without precondition checking. Used by the
// move generator's in-place simulate/restore loops, which already know the
// field state from having just inspected it.
func (b *Board) setUnchecked(pos FieldPos, code FieldCode) {
	b.ring[pos.Ring] = (b.ring[pos.Ring] &^ (fieldMask << pos.bitOffset())) | (uint16(code) << pos.bitOffset())
}

// StoneCount returns the number of fields occupied by color.
func (b Board) StoneCount(color Color) uint32 {
	var n uint32
	want := color.code()
	for r := uint8(0); r < 3; r++ {
		for i := uint8(0); i < 8; i++ {
			if b.Get(FieldPos{r, i}) == want {
				n++
			}
		}
	}
	return n
}

// EmptyFields returns every empty field. Order is unspecified.
func (b Board) EmptyFields() []FieldPos {
	out := make([]FieldPos, 0, 24)
	for r := uint8(0); r < 3; r++ {
		for i := uint8(0); i < 8; i++ {
			pos := FieldPos{r, i}
			if b.Get(pos) == Empty {
				out = append(out, pos)
			}
		}
	}
	return out
}

// PositionsOf returns every field occupied by color.
func (b Board) PositionsOf(color Color) []FieldPos {
	out := make([]FieldPos, 0, 9)
	want := color.code()
	for r := uint8(0); r < 3; r++ {
		for i := uint8(0); i < 8; i++ {
			pos := FieldPos{r, i}
			if b.Get(pos) == want {
				out = append(out, pos)
			}
		}
	}
	return out
}

// PositionsOfNot returns every field occupied by the opposing color.
func (b Board) PositionsOfNot(color Color) []FieldPos {
	return b.PositionsOf(color.Not())
}

// checkInvariants reports an InvariantViolation if any field holds the
// illegal 0b11 code, or if either player exceeds maxStones. It is used by
// codec decoding, not by the hot move-generation path.
func (b Board) checkInvariants(maxStones uint32) error {
	for r := uint8(0); r < 3; r++ {
		for i := uint8(0); i < 8; i++ {
			if b.Get(FieldPos{r, i}) == illegal {
				return errors.Wrapf(ErrInvariantViolation, "illegal field code at ring %d index %d", r, i)
			}
		}
	}
	if maxStones > 0 {
		if b.StoneCount(White) > maxStones || b.StoneCount(Black) > maxStones {
			return errors.Wrapf(ErrInvariantViolation, "stone count exceeds max %d", maxStones)
		}
	}
	return nil
}

// invertColors swaps every White field with Black and vice versa, leaving
// empty fields untouched. It is an involution: InvertColors(InvertColors(b))
// == b.
func invertColors(b Board) Board {
	var out Board
	for r := uint8(0); r < 3; r++ {
		word := b.ring[r]
		var newWord uint16
		for i := uint8(0); i < 8; i++ {
			shift := uint(i) * 2
			code := FieldCode((word >> shift) & fieldMask)
			switch code {
			case fcWhite:
				newWord |= uint16(fcBlack) << shift
			case fcBlack:
				newWord |= uint16(fcWhite) << shift
			}
		}
		out.ring[r] = newWord
	}
	return out
}

// InvertColors returns b with White and Black swapped on every field.
func InvertColors(b Board) Board {
	return invertColors(b)
}

// words returns the board's three ring words, in canonical comparison order
// (ring[2], ring[1], ring[0]) as used by Canon.
func (b Board) words() [3]uint16 {
	return [3]uint16{b.ring[2], b.ring[1], b.ring[0]}
}

// Key packs the board into a single uint64 for use as a map/store key:
// ring[2]<<32 | ring[1]<<16 | ring[0].
func (b Board) Key() uint64 {
	return uint64(b.ring[2])<<32 | uint64(b.ring[1])<<16 | uint64(b.ring[0])
}

// FromKey is the inverse of Key.
func FromKey(key uint64) Board {
	return Board{ring: [3]uint16{
		uint16(key),
		uint16(key >> 16),
		uint16(key >> 32),
	}}
}
