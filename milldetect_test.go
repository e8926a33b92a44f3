package morris

import "testing"

func TestOnRingMillDetected(t *testing.T) {
	// White on outer-ring indices 7, 0 and 1: the top edge, a corner-mid-corner mill.
	b := mustBoard(t, "WWEEEEEWEEEEEEEEEEEEEEEE")
	if n := MillCount(b, FieldPos{2, 0}, MillMode{Scope: OnRing}); n != 1 {
		t.Errorf("MillCount = %d, want 1", n)
	}
}

func TestAcrossRingMillDetected(t *testing.T) {
	var b Board
	b.setUnchecked(FieldPos{0, 0}, fcWhite)
	b.setUnchecked(FieldPos{1, 0}, fcWhite)
	b.setUnchecked(FieldPos{2, 0}, fcWhite)

	if n := MillCount(b, FieldPos{1, 0}, MillMode{Scope: OnAndAcrossRings, Color: White}); n != 1 {
		t.Errorf("MillCount = %d, want 1", n)
	}
}

func TestCornerFieldHasNoAcrossRingMill(t *testing.T) {
	var b Board
	b.setUnchecked(FieldPos{0, 1}, fcWhite)
	b.setUnchecked(FieldPos{1, 1}, fcWhite)
	b.setUnchecked(FieldPos{2, 1}, fcWhite)

	if n := MillCount(b, FieldPos{1, 1}, MillMode{Scope: OnAndAcrossRings, Color: White}); n != 0 {
		t.Errorf("MillCount = %d, want 0 (corner fields have no across-ring mill)", n)
	}
}

func TestDoubleMillAtCorner(t *testing.T) {
	var b Board
	// index 1 is a corner shared by window {7,0,1} and window {1,2,3}; build
	// both full on-ring windows through index 1.
	b.setUnchecked(FieldPos{0, 0}, fcWhite)
	b.setUnchecked(FieldPos{0, 1}, fcWhite)
	b.setUnchecked(FieldPos{0, 2}, fcWhite)
	b.setUnchecked(FieldPos{0, 3}, fcWhite)
	b.setUnchecked(FieldPos{0, 7}, fcWhite)

	if n := MillCount(b, FieldPos{0, 1}, MillMode{Scope: OnRing}); n != 2 {
		t.Errorf("MillCount = %d, want 2", n)
	}
}

func TestMillCountBounded(t *testing.T) {
	b := mustBoard(t, "BBEEEEEBEEEEWEWWBWWEEEBE")
	for r := uint8(0); r < 3; r++ {
		for i := uint8(0); i < 8; i++ {
			for _, color := range []Color{White, Black} {
				n := MillCount(b, FieldPos{r, i}, MillMode{Scope: OnAndAcrossRings, Color: color})
				if n < 0 || n > 2 {
					t.Fatalf("MillCount out of bounds: %d", n)
				}
			}
		}
	}
}

func TestMillCountOnEmptyFieldIsZero(t *testing.T) {
	var b Board
	if n := MillCount(b, FieldPos{0, 0}, MillMode{Scope: OnRing}); n != 0 {
		t.Errorf("MillCount on empty board = %d, want 0", n)
	}
}
