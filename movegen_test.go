package morris

import "testing"

func TestEmptyBoardHasNoMoves(t *testing.T) {
	var b Board
	if moves := ForwardMoves(b, White); len(moves) != 0 {
		t.Errorf("ForwardMoves on empty board = %d moves, want 0", len(moves))
	}
	if moves := BackwardMoves(b, White, 9); len(moves) != 0 {
		t.Errorf("BackwardMoves on empty board = %d moves, want 0", len(moves))
	}
}

func TestFieldsToTakeExcludesMillStones(t *testing.T) {
	var b Board
	b.setUnchecked(FieldPos{0, 7}, fcBlack)
	b.setUnchecked(FieldPos{0, 0}, fcBlack)
	b.setUnchecked(FieldPos{0, 1}, fcBlack)
	b.setUnchecked(FieldPos{1, 3}, fcBlack)

	take := FieldsToTake(b, White)
	if len(take) != 1 || take[0] != (FieldPos{1, 3}) {
		t.Errorf("FieldsToTake = %v, want only the non-mill Black stone", take)
	}
}

func TestFieldsToTakeFallsBackToAllWhenEveryStoneInMill(t *testing.T) {
	var b Board
	b.setUnchecked(FieldPos{0, 7}, fcBlack)
	b.setUnchecked(FieldPos{0, 0}, fcBlack)
	b.setUnchecked(FieldPos{0, 1}, fcBlack)

	take := FieldsToTake(b, White)
	if len(take) != 3 {
		t.Errorf("FieldsToTake = %v, want all 3 mill stones since none are free", take)
	}
}

func TestForwardMoveClosingMillProducesOneBoardPerCapturableField(t *testing.T) {
	var b Board
	b.setUnchecked(FieldPos{2, 0}, fcWhite)
	b.setUnchecked(FieldPos{2, 1}, fcWhite)
	b.setUnchecked(FieldPos{2, 6}, fcWhite) // moves to 7 to close the mill {7,0,1}; no other move closes one
	b.setUnchecked(FieldPos{1, 5}, fcBlack)
	b.setUnchecked(FieldPos{1, 6}, fcBlack)

	moves := ForwardMoves(b, White)
	var capturingMoves int
	for _, m := range moves {
		if m.StoneCount(Black) == 1 {
			capturingMoves++
		}
	}
	if capturingMoves != 2 {
		t.Errorf("expected 2 capturing moves (one per takeable Black stone), got %d", capturingMoves)
	}
}

func TestJumpPhaseReachesEveryEmptyField(t *testing.T) {
	var b Board
	b.setUnchecked(FieldPos{0, 0}, fcWhite)
	b.setUnchecked(FieldPos{0, 1}, fcWhite)
	b.setUnchecked(FieldPos{0, 2}, fcWhite)

	moves := ForwardMoves(b, White)
	// 3 stones, each can jump to any of the 21 other empty fields (its own
	// source field is excluded). Jumping 0 to 3 or 2 to 7 closes a mill,
	// and with no Black stone to take such a move yields no board; every
	// board that is produced carries exactly 3 White stones and 0 Black
	// stones.
	for _, m := range moves {
		if m.StoneCount(White) != 3 {
			t.Errorf("jump-phase move changed White stone count: %+v", m)
		}
	}
	if len(moves) == 0 {
		t.Error("jump-phase should have produced moves")
	}
}

func TestForwardBackwardAreInverse(t *testing.T) {
	var b Board
	b.setUnchecked(FieldPos{2, 0}, fcWhite)
	b.setUnchecked(FieldPos{2, 2}, fcWhite)
	b.setUnchecked(FieldPos{1, 5}, fcBlack)

	for _, successor := range ForwardMoves(b, White) {
		predecessors := BackwardMoves(successor, White, 9)
		found := false
		for _, p := range predecessors {
			if p == b {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("BackwardMoves(%v, White, 9) does not contain original board %v", successor, b)
		}
	}
}
