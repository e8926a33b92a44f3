package morris

import "math/bits"

// The board's symmetry group has order 16: 4 rotations (the board only has
// 4-fold geometric symmetry even though each ring has 8 index positions,
// since rotating by a single index position would turn a mid-edge field
// into a corner field) composed with an optional left-right mirror and an
// optional inner/outer ring swap.

// RotateRight rotates every ring by k quarter-turns (k in 0..=3). Each
// quarter-turn shifts a ring's index positions by 2 (4 bits, since each
// field is 2 bits), implemented as a 16-bit rotate-left by 4*k.
func RotateRight(b Board, k uint) Board {
	shift := uint((4 * k) % 16)
	return Board{ring: [3]uint16{
		bits.RotateLeft16(b.ring[0], int(shift)),
		bits.RotateLeft16(b.ring[1], int(shift)),
		bits.RotateLeft16(b.ring[2], int(shift)),
	}}
}

// mirrorRingWord applies the left-right mirror permutation to one ring:
// fixed points 0 and 4 (the pole axis), swapped pairs (1,7), (2,6), (3,5).
func mirrorRingWord(w uint16) uint16 {
	get := func(i uint) uint16 {
		return (w >> (i * 2)) & fieldMask
	}
	var out uint16
	put := func(i uint, v uint16) {
		out |= v << (i * 2)
	}
	perm := [8]uint{0, 7, 6, 5, 4, 3, 2, 1}
	for i := uint(0); i < 8; i++ {
		put(i, get(perm[i]))
	}
	return out
}

// MirrorY reflects the board across the vertical axis through field 0 and
// field 4 of each ring.
func MirrorY(b Board) Board {
	return Board{ring: [3]uint16{
		mirrorRingWord(b.ring[0]),
		mirrorRingWord(b.ring[1]),
		mirrorRingWord(b.ring[2]),
	}}
}

// SwapRings exchanges the inner and outer rings; the middle ring is fixed,
// matching the board's ring-symmetric geometry (only ring 0 <-> ring 2 is a
// symmetry of the board).
func SwapRings(b Board) Board {
	return Board{ring: [3]uint16{b.ring[2], b.ring[1], b.ring[0]}}
}

// wordsLess compares two (ring[2], ring[1], ring[0]) tuples lexicographically,
// from index 0 (most significant).
func wordsLess(a, b [3]uint16) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Canon returns the lexicographically greatest of the 16 images of b under
// the symmetry group, compared as (ring[2], ring[1], ring[0]) tuples. This
// is the board's canonical representative: canon(b) == canon(sigma(b)) for
// every symmetry sigma, and canon is idempotent.
func Canon(b Board) Board {
	best := b
	bestWords := b.words()

	consider := func(candidate Board) {
		w := candidate.words()
		if wordsLess(bestWords, w) {
			best = candidate
			bestWords = w
		}
	}

	for _, ringSwapped := range [2]bool{false, true} {
		base := b
		if ringSwapped {
			base = SwapRings(base)
		}
		for _, mirrored := range [2]bool{false, true} {
			m := base
			if mirrored {
				m = MirrorY(m)
			}
			for k := uint(0); k < 4; k++ {
				consider(RotateRight(m, k))
			}
		}
	}

	return best
}
