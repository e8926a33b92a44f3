package morris

// GenerateSeeds produces the initial set of boards known to be WON for
// White without needing retrograde analysis: a closed white mill with two
// black stones placed around it, and black stones boxed in by white stones
// so tightly they have no legal move. Both families are then topped up with
// every possible additional white stone placement up to maxStones; no
// further black stones are added.
// Results are canonicalized and deduplicated.
func GenerateSeeds(maxStones uint32) []Board {
	seen := make(map[uint64]Board)
	addSeed := func(b Board) {
		c := Canon(b)
		seen[c.Key()] = c
	}

	generateMillSeeds(maxStones, addSeed)
	generateEnclosureSeeds(maxStones, addSeed)

	out := make([]Board, 0, len(seen))
	for _, b := range seen {
		out = append(out, b)
	}
	return out
}

func positionByLinearIndex(i int) FieldPos {
	return FieldPos{Ring: uint8(i / 8), Index: uint8(i % 8)}
}

// canonicalMills returns the 3 geometrically distinct closed-mill shapes:
// an outer-ring mill, a middle-ring mill, and a spoke (across-ring) mill.
// Every other closed mill is a symmetry image of one of these three, so
// canonicalization after placement covers the rest.
func canonicalMills() [3]Board {
	var mills [3]Board
	mills[0].setUnchecked(FieldPos{2, 7}, fcWhite)
	mills[0].setUnchecked(FieldPos{2, 0}, fcWhite)
	mills[0].setUnchecked(FieldPos{2, 1}, fcWhite)

	mills[1].setUnchecked(FieldPos{1, 7}, fcWhite)
	mills[1].setUnchecked(FieldPos{1, 0}, fcWhite)
	mills[1].setUnchecked(FieldPos{1, 1}, fcWhite)

	mills[2].setUnchecked(FieldPos{2, 0}, fcWhite)
	mills[2].setUnchecked(FieldPos{1, 0}, fcWhite)
	mills[2].setUnchecked(FieldPos{0, 0}, fcWhite)
	return mills
}

// distributeStones recursively places between 1 and amount more stones of
// color onto board's empty fields, starting the scan at startIndex, calling
// emit after every placement (so every intermediate stone count, not just
// the final one, is reported).
func distributeStones(board Board, color Color, amount int, startIndex int, emit func(Board)) {
	if amount <= 0 {
		return
	}
	for i := startIndex; i < 24; i++ {
		pos := positionByLinearIndex(i)
		if board.Get(pos) != Empty {
			continue
		}
		next := board
		next.setUnchecked(pos, color.code())
		emit(next)
		if amount > 1 {
			distributeStones(next, color, amount-1, i+1, emit)
		}
	}
}

// generateMillSeeds places two black stones around each canonical mill,
// then tops up with white stones (white must reach 3 before black gets its
// first stone in a real game, so only white is distributed further here).
func generateMillSeeds(maxStones uint32, addSeed func(Board)) {
	whiteBudget := int(maxStones) - 3

	for _, mill := range canonicalMills() {
		for i := 0; i < 24; i++ {
			posI := positionByLinearIndex(i)
			if mill.Get(posI) != Empty {
				continue
			}
			withFirstBlack := mill
			withFirstBlack.setUnchecked(posI, fcBlack)

			for j := i + 1; j < 24; j++ {
				posJ := positionByLinearIndex(j)
				if mill.Get(posJ) != Empty {
					continue
				}
				config := withFirstBlack
				config.setUnchecked(posJ, fcBlack)

				addSeed(config)
				if whiteBudget > 0 {
					distributeStones(config, White, whiteBudget, 0, addSeed)
				}
			}
		}
	}
}

// generateEnclosureSeeds places 4 or more black stones (fewer can always
// jump free, so cannot be enclosed), then for each resulting shape computes
// the minimal set of white stones that immobilizes every black stone and,
// if that fits within maxStones, adds the enclosure plus every possible
// further white placement.
func generateEnclosureSeeds(maxStones uint32, addSeed func(Board)) {
	if maxStones < 4 {
		return
	}

	blackOnly := make(map[uint64]Board)
	addBlack := func(b Board) {
		c := Canon(b)
		blackOnly[c.Key()] = c
	}
	blackBudget := int(maxStones) - 4

	for i := 0; i < 24; i++ {
		b1 := Board{}
		b1.setUnchecked(positionByLinearIndex(i), fcBlack)
		for j := i + 1; j < 24; j++ {
			b2 := b1
			b2.setUnchecked(positionByLinearIndex(j), fcBlack)
			for k := j + 1; k < 24; k++ {
				b3 := b2
				b3.setUnchecked(positionByLinearIndex(k), fcBlack)
				for l := k + 1; l < 24; l++ {
					b4 := b3
					b4.setUnchecked(positionByLinearIndex(l), fcBlack)

					addBlack(b4)
					if blackBudget > 0 {
						distributeStones(b4, Black, blackBudget, l+1, addBlack)
					}
				}
			}
		}
	}

	enclosing := make(map[FieldPos]struct{})
	for _, pf := range blackOnly {
		for k := range enclosing {
			delete(enclosing, k)
		}
		encloseBlackStones(pf, maxStones, enclosing, addSeed)
	}
}

// placementsToEncloseBlack collects every field adjacent (on-ring or
// across-ring) to a black stone that is currently empty: the fields a white
// stone must occupy for black to have no legal move.
func placementsToEncloseBlack(pf Board, out map[FieldPos]struct{}) {
	for r := uint8(0); r < 3; r++ {
		for i := uint8(0); i < 8; i++ {
			pos := FieldPos{r, i}
			if pf.Get(pos) != fcBlack {
				continue
			}
			left, right := pos.OnRingNeighbors()
			if pf.Get(left) == Empty {
				out[left] = struct{}{}
			}
			if pf.Get(right) == Empty {
				out[right] = struct{}{}
			}
			for _, n := range pos.AcrossRingNeighbors() {
				if pf.Get(n) == Empty {
					out[n] = struct{}{}
				}
			}
		}
	}
}

// encloseBlackStones places white on every field returned by
// placementsToEncloseBlack, if that fits within maxStones, then tops up
// with every further possible white placement.
func encloseBlackStones(pf Board, maxStones uint32, enclosing map[FieldPos]struct{}, addSeed func(Board)) {
	placementsToEncloseBlack(pf, enclosing)
	needed := uint32(len(enclosing))
	if needed > maxStones {
		return
	}

	enclosed := pf
	for pos := range enclosing {
		enclosed.setUnchecked(pos, fcWhite)
	}
	addSeed(enclosed)

	leftover := int(maxStones - needed)
	if leftover > 0 {
		distributeStones(enclosed, White, leftover, 0, addSeed)
	}
}
