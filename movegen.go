package morris

// FieldsToTake returns the opposing stones color may take after closing a
// mill: the opponent's stones not currently in a mill, or, if every
// opponent stone is in a mill, every opponent stone.
func FieldsToTake(board Board, color Color) []FieldPos {
	opp := color.Not()
	oppPositions := board.PositionsOf(opp)

	notInMill := make([]FieldPos, 0, len(oppPositions))
	for _, p := range oppPositions {
		if MillCount(board, p, MillMode{Scope: OnAndAcrossRings, Color: opp}) == 0 {
			notInMill = append(notInMill, p)
		}
	}
	if len(notInMill) == 0 {
		return oppPositions
	}
	return notInMill
}

func containsField(fields []FieldPos, pos FieldPos) bool {
	for _, f := range fields {
		if f == pos {
			return true
		}
	}
	return false
}

// slideDestinations returns the empty fields color's stone at f may slide
// or across-ring-move to: on-ring neighbors and, for even indices, the
// across-ring neighbor(s), filtered to the ones currently empty on board.
func slideDestinations(board Board, f FieldPos) []FieldPos {
	var dests []FieldPos
	left, right := f.OnRingNeighbors()
	if board.Get(left) == Empty {
		dests = append(dests, left)
	}
	if board.Get(right) == Empty {
		dests = append(dests, right)
	}
	for _, n := range f.AcrossRingNeighbors() {
		if board.Get(n) == Empty {
			dests = append(dests, n)
		}
	}
	return dests
}

// ForwardMoves enumerates every legal move of color from board, producing
// one post-move board per move (or, for a move that closes a mill, one
// post-move board per field in FieldsToTake). Results may contain
// duplicate boards reached by different moves; deduplication happens
// downstream via canonicalization.
func ForwardMoves(board Board, color Color) []Board {
	fieldsToTake := FieldsToTake(board, color)
	mine := board.PositionsOf(color)
	out := make([]Board, 0, len(mine)*4)

	applyMove := func(cand Board, dest FieldPos) {
		if MillCount(cand, dest, MillMode{Scope: OnAndAcrossRings, Color: color}) > 0 {
			for _, t := range fieldsToTake {
				capture := cand
				capture.setUnchecked(t, Empty)
				out = append(out, capture)
			}
			return
		}
		out = append(out, cand)
	}

	if board.StoneCount(color) == 3 {
		for _, f := range mine {
			base := board
			base.setUnchecked(f, Empty)
			for _, e := range base.EmptyFields() {
				if e == f {
					continue
				}
				cand := base
				cand.setUnchecked(e, color.code())
				applyMove(cand, e)
			}
		}
		return out
	}

	for _, f := range mine {
		for _, dest := range slideDestinations(board, f) {
			cand := board
			cand.setUnchecked(f, Empty)
			cand.setUnchecked(dest, color.code())
			applyMove(cand, dest)
		}
	}
	return out
}

// backwardSources returns the candidate predecessor fields f' for a
// backward move that placed color's stone at f in board: every empty
// field, if color has exactly 3 stones (jump phase), or the empty on-ring
// and across-ring neighbors of f otherwise.
func backwardSources(board Board, color Color, f FieldPos, empties []FieldPos) []FieldPos {
	if board.StoneCount(color) == 3 {
		return empties
	}
	return slideDestinations(board, f)
}

// BackwardMoves enumerates the predecessors of board under a move by color:
// boards whose ForwardMoves(·, color) set contains board. If the stone at f
// was in a mill (checked before it is cleared — moving away from a mill
// field breaks it, and retrograde must account for that), a captured
// opposing stone is restored on some empty field e (e != f', the chosen
// predecessor position) that could legally have been taken from e once
// restored; if the opponent is already at maxStones, no stone is restored.
func BackwardMoves(board Board, color Color, maxStones uint32) []Board {
	empties := board.EmptyFields()
	oppCount := board.StoneCount(color.Not())
	mine := board.PositionsOf(color)
	out := make([]Board, 0, len(mine)*4)

	for _, f := range mine {
		wasInMill := MillCount(board, f, MillMode{Scope: OnAndAcrossRings, Color: color}) > 0
		sources := backwardSources(board, color, f, empties)

		for _, fPrime := range sources {
			pred := board
			pred.setUnchecked(f, Empty)
			pred.setUnchecked(fPrime, color.code())

			if !wasInMill || oppCount >= maxStones {
				out = append(out, pred)
				continue
			}

			for _, e := range empties {
				if e == fPrime {
					continue
				}
				candidate := pred
				candidate.setUnchecked(e, color.Not().code())
				if containsField(FieldsToTake(candidate, color), e) {
					out = append(out, candidate)
				}
			}
		}
	}
	return out
}
