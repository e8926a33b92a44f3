package morris

import (
	"context"
	"testing"
)

func TestSolveN3MatchesKnownCounts(t *testing.T) {
	engine := &RetroEngine{MaxStones: 3, Workers: 4}
	won, lost, err := engine.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if got := won.Len(); got != 140621 {
		t.Errorf("|WON| = %d, want 140621", got)
	}
	if got := lost.Len(); got != 28736 {
		t.Errorf("|LOST| = %d, want 28736", got)
	}
}

func TestSolveWonLostDisjoint(t *testing.T) {
	engine := &RetroEngine{MaxStones: 3, Workers: 4}
	won, lost, err := engine.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	for _, key := range lost.Keys() {
		if won.Contains(FromKey(key)) {
			t.Fatalf("key %d present in both WON and LOST", key)
		}
	}
}

func TestSolveSeedsEndUpInWon(t *testing.T) {
	seeds := GenerateSeeds(3)
	if len(seeds) == 0 {
		t.Fatal("no seeds generated for MaxStones=3")
	}

	engine := &RetroEngine{MaxStones: 3, Workers: 4}
	won, _, err := engine.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	for _, s := range seeds {
		if !won.Contains(s) {
			t.Errorf("seed %v not present in final WON set", s)
		}
	}
}
