package morris

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RetroEngine runs the parallel fixed-point retrograde analysis that
// classifies every board reachable from the WON seeds as WON or LOST for
// White. It alternates levels by who moved last: on even levels the board
// being expanded was reached by a White move, so every one of its backward
// moves (a White-to-move predecessor) is WON too; on odd levels the board
// was reached by a Black move, so a predecessor only enters the LOST set
// if every one of Black's replies from there is already known WON.
type RetroEngine struct {
	MaxStones uint32
	Workers   int
	Shards    int
	Logger    *zap.Logger
}

type levelItem struct {
	board Board
	level int
}

// Solve seeds the WON set, then drains the work queue level by level until
// no board produces a previously unknown successor, and returns the final
// WON and LOST stores.
func (e *RetroEngine) Solve(ctx context.Context) (won, lost *Store, err error) {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	won = NewStore(e.Shards)
	lost = NewStore(e.Shards)

	seeds := GenerateSeeds(e.MaxStones)
	queue := make([]levelItem, 0, len(seeds))
	for _, s := range seeds {
		c := Canon(s)
		won.Add(c)
		queue = append(queue, levelItem{board: c, level: 0})
	}
	logger.Info("seeded won set", zap.Int("seeds", len(seeds)), zap.Uint32("max_stones", e.MaxStones))

	workers := e.Workers
	if workers <= 0 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	for level := 0; len(queue) > 0; level++ {
		g, gctx := errgroup.WithContext(ctx)
		nextBatches := make([][]levelItem, len(queue))

		for i, item := range queue {
			i, item := i, item
			g.Go(func() error {
				select {
				case sem <- struct{}{}:
				case <-gctx.Done():
					return gctx.Err()
				}
				defer func() { <-sem }()

				nextBatches[i] = expandLevelItem(item, e.MaxStones, won, lost)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, nil, err
		}

		queue = queue[:0]
		for _, batch := range nextBatches {
			queue = append(queue, batch...)
		}
		logger.Debug("level expanded", zap.Int("level", level), zap.Int("frontier", len(queue)))
	}

	logger.Info("retrograde analysis complete", zap.Int("won", won.Len()), zap.Int("lost", lost.Len()))
	return won, lost, nil
}

func expandLevelItem(item levelItem, maxStones uint32, won, lost *Store) []levelItem {
	if item.level%2 == 0 {
		return expandWhiteMovedLast(item, maxStones, won)
	}
	return expandBlackMovedLast(item, maxStones, won, lost)
}

// expandWhiteMovedLast treats item.board as WON-for-White-already-known and
// adds every backward move by White (a White-to-move predecessor) directly
// to the WON set, since White having just moved into a WON position means
// the position White moved from is WON too.
func expandWhiteMovedLast(item levelItem, maxStones uint32, won *Store) []levelItem {
	var next []levelItem
	for _, pred := range BackwardMoves(item.board, White, maxStones) {
		canon := Canon(pred)
		if won.Add(canon) {
			next = append(next, levelItem{board: canon, level: item.level + 1})
		}
	}
	return next
}

// expandBlackMovedLast treats item.board as a WON-for-White position Black
// just moved into. For each backward move by Black (a predecessor where
// Black is to move), the predecessor is only provably LOST for Black if
// every one of Black's forward replies from it is already known WON; a
// reply not yet classified means the predecessor's status is still
// undetermined and it is skipped; it is examined again only if a later
// odd-level board yields it as a backward move once more. A confirmed LOST-for-Black predecessor is stored, from White's
// perspective, as its color-inverted canonical form.
func expandBlackMovedLast(item levelItem, maxStones uint32, won, lost *Store) []levelItem {
	var next []levelItem

	for _, backwardMove := range BackwardMoves(item.board, Black, maxStones) {
		allRepliesKnownWon := true
		for _, reply := range ForwardMoves(backwardMove, Black) {
			if !won.Contains(Canon(reply)) {
				allRepliesKnownWon = false
				break
			}
		}
		if !allRepliesKnownWon {
			continue
		}

		if lost.Add(Canon(InvertColors(backwardMove))) {
			next = append(next, levelItem{board: backwardMove, level: item.level + 1})
		}
	}
	return next
}
