package morris

// MoveTriple computes (mobility, millMoves, capturable) for color on board:
//
//   - mobility: legal forward moves, ignoring captures.
//   - millMoves: moves that close at least one new mill.
//   - capturable: opposing stones that could be taken right now, applying
//     the FieldsToTake rule.
//
// When color has exactly 3 stones, every move is a jump and the jump-phase
// special case applies (see jumpPhaseMoveTriple).
func MoveTriple(board Board, color Color) (mobility, millMoves, capturable uint32) {
	if board.StoneCount(color) == 3 {
		return jumpPhaseMoveTriple(board, color)
	}

	opp := color.Not()
	var overallOpp uint32

	trySimulate := func(from, to FieldPos) {
		mobility++
		cand := board
		cand.setUnchecked(from, Empty)
		cand.setUnchecked(to, color.code())
		if MillCount(cand, to, MillMode{Scope: OnAndAcrossRings, Color: color}) > 0 {
			millMoves++
		}
	}

	for r := uint8(0); r < 3; r++ {
		for i := uint8(0); i < 8; i++ {
			pos := FieldPos{r, i}
			code := board.Get(pos)
			if code == Empty {
				continue
			}
			if code == color.code() {
				left, right := pos.OnRingNeighbors()
				if board.Get(left) == Empty {
					trySimulate(pos, left)
				}
				if board.Get(right) == Empty {
					trySimulate(pos, right)
				}
				for _, n := range pos.AcrossRingNeighbors() {
					if board.Get(n) == Empty {
						trySimulate(pos, n)
					}
				}
			} else {
				overallOpp++
				if MillCount(board, pos, MillMode{Scope: OnAndAcrossRings, Color: opp}) == 0 {
					capturable++
				}
			}
		}
	}

	if capturable == 0 {
		capturable = overallOpp
	}
	return mobility, millMoves, capturable
}

// jumpPhaseMoveTriple handles color having exactly 3 stones. Every jump
// lands on an opponent field conceptually reachable from any of the 3
// source stones, so mobility is 3 times the opponent stone count;
// capturable counts opponent stones not already in a mill; millMoves is 1
// exactly when two (but not all three) of color's stones share a ring or
// share an index, which is the collinearity condition for a third-stone
// jump to complete a mill with the other two.
func jumpPhaseMoveTriple(board Board, color Color) (mobility, millMoves, capturable uint32) {
	opp := color.Not()
	oppPositions := board.PositionsOfNot(color)

	mobility = 3 * uint32(len(oppPositions))
	capturable = uint32(len(oppPositions))
	for _, p := range oppPositions {
		if MillCount(board, p, MillMode{Scope: OnAndAcrossRings, Color: opp}) > 0 {
			capturable--
		}
	}

	mine := board.PositionsOf(color)
	if len(mine) == 3 && collinearPair(mine[0], mine[1], mine[2]) {
		millMoves = 1
	}
	return mobility, millMoves, capturable
}

// collinearPair reports whether exactly two (not all three) of a, b, c
// share a ring index or share a field index.
func collinearPair(a, b, c FieldPos) bool {
	return (a.Ring == b.Ring && b.Ring != c.Ring) ||
		(a.Ring != b.Ring && b.Ring == c.Ring) ||
		(a.Ring == c.Ring && a.Ring != b.Ring) ||
		(a.Index == b.Index && b.Index != c.Index) ||
		(a.Index != b.Index && b.Index == c.Index) ||
		(a.Index == c.Index && a.Index != b.Index)
}
