package ranking

import (
	"errors"
	"fmt"
	"testing"

	"gridiron/contexts/league-play/ranking-service/domain/entities"
	domainerrors "gridiron/contexts/league-play/ranking-service/domain/errors"
)

func board(ids ...string) []entities.RankingEntry {
	entries := make([]entities.RankingEntry, len(ids))
	for i, id := range ids {
		entries[i] = entities.RankingEntry{PlayerID: id, Rank: i + 1}
	}
	return entries
}

func rankOf(t *testing.T, entries []entities.RankingEntry, playerID string) int {
	t.Helper()
	for _, entry := range entries {
		if entry.PlayerID == playerID {
			return entry.Rank
		}
	}
	t.Fatalf("player %s not on board", playerID)
	return 0
}

func assertPermutation(t *testing.T, entries []entities.RankingEntry) {
	t.Helper()
	seen := make(map[int]string, len(entries))
	for _, entry := range entries {
		if entry.Rank < 1 || entry.Rank > len(entries) {
			t.Fatalf("rank %d out of range for %d entries", entry.Rank, len(entries))
		}
		if other, dup := seen[entry.Rank]; dup {
			t.Fatalf("rank %d held by both %s and %s", entry.Rank, other, entry.PlayerID)
		}
		seen[entry.Rank] = entry.PlayerID
	}
}

func TestNextComparisonPairWalksBottomUp(t *testing.T) {
	entries := board("a", "b", "c", "d")

	pair, ok := NextComparisonPair(entries)
	if !ok {
		t.Fatalf("expected a pair")
	}
	if pair.ChallengerID != "d" || pair.IncumbentID != "c" {
		t.Fatalf("expected d vs c, got %s vs %s", pair.ChallengerID, pair.IncumbentID)
	}
}

func TestNextComparisonPairRankOnePairsWithRankTwo(t *testing.T) {
	entries := board("a", "b", "c")
	entries[1].Compared = true
	entries[2].Compared = true

	pair, ok := NextComparisonPair(entries)
	if !ok {
		t.Fatalf("expected a pair")
	}
	if pair.ChallengerID != "a" || pair.IncumbentID != "b" {
		t.Fatalf("expected a vs b, got %s vs %s", pair.ChallengerID, pair.IncumbentID)
	}
}

func TestNextComparisonPairSingleEntry(t *testing.T) {
	if _, ok := NextComparisonPair(board("a")); ok {
		t.Fatalf("single-entry board must not produce a pair")
	}
}

func TestNextComparisonPairComplete(t *testing.T) {
	entries := board("a", "b")
	entries[0].Compared = true
	entries[1].Compared = true
	if _, ok := NextComparisonPair(entries); ok {
		t.Fatalf("completed board must not produce a pair")
	}
}

func TestResolveComparisonTopSwap(t *testing.T) {
	// [A,B,C,D], A vs B with B winning: the two swap, both compared.
	entries := board("a", "b", "c", "d")

	res, err := ResolveComparison(entries, "b", "a")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Promotion != nil {
		t.Fatalf("top swap must not open a promotion cycle")
	}
	if rankOf(t, res.Entries, "b") != 1 || rankOf(t, res.Entries, "a") != 2 {
		t.Fatalf("expected order [b a c d], got ranks b=%d a=%d",
			rankOf(t, res.Entries, "b"), rankOf(t, res.Entries, "a"))
	}
	for _, id := range []string{"a", "b"} {
		idx := indexOf(res.Entries, id)
		if !res.Entries[idx].Compared {
			t.Fatalf("expected %s compared", id)
		}
	}
	assertPermutation(t, res.Entries)
}

func TestResolveComparisonRankOneLossSettlesImmediately(t *testing.T) {
	// [A,B,C], A vs C with C winning: no entry sits above rank 1, so no cycle
	// opens. C relocates straight to rank 1 and both duelists are compared.
	entries := board("a", "b", "c")

	res, err := ResolveComparison(entries, "c", "a")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Promotion != nil {
		t.Fatalf("beating the rank-1 entry must not open a promotion cycle")
	}
	want := map[string]int{"c": 1, "a": 2, "b": 3}
	for id, rank := range want {
		if got := rankOf(t, res.Entries, id); got != rank {
			t.Fatalf("expected %s at rank %d, got %d", id, rank, got)
		}
	}
	for _, id := range []string{"a", "c"} {
		if !res.Entries[indexOf(res.Entries, id)].Compared {
			t.Fatalf("expected %s compared", id)
		}
	}
	if res.Entries[indexOf(res.Entries, "b")].Compared {
		t.Fatalf("bystander b must stay uncompared")
	}
	assertPermutation(t, res.Entries)
}

func TestResolveComparisonConsistentOrder(t *testing.T) {
	entries := board("a", "b", "c", "d")

	res, err := ResolveComparison(entries, "c", "d")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Promotion != nil {
		t.Fatalf("consistent order must not open a promotion cycle")
	}
	if rankOf(t, res.Entries, "c") != 3 || rankOf(t, res.Entries, "d") != 4 {
		t.Fatalf("consistent resolve must not reorder")
	}
}

func TestResolveComparisonOpensPromotion(t *testing.T) {
	entries := board("a", "b", "c")

	res, err := ResolveComparison(entries, "c", "b")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Promotion == nil {
		t.Fatalf("lower-ranked winner must open a promotion cycle")
	}
	if res.Promotion.PromotedID != "c" || res.Promotion.CycleIndex != 2 || res.Promotion.OriginLoserID != "b" {
		t.Fatalf("unexpected promotion state %+v", res.Promotion)
	}
	// Entries stay untouched until the cycle settles.
	for i, id := range []string{"a", "b", "c"} {
		if rankOf(t, res.Entries, id) != i+1 {
			t.Fatalf("promotion open must not move entries")
		}
		if res.Entries[indexOf(res.Entries, id)].Compared {
			t.Fatalf("promotion open must not mark entries compared")
		}
	}
}

func TestResolveComparisonUnknownPlayer(t *testing.T) {
	entries := board("a", "b")
	if _, err := ResolveComparison(entries, "zz", "a"); !errors.Is(err, domainerrors.ErrUnknownPlayer) {
		t.Fatalf("expected ErrUnknownPlayer, got %v", err)
	}
	if _, err := ResolveComparison(entries, "a", "a"); !errors.Is(err, domainerrors.ErrUnknownPlayer) {
		t.Fatalf("expected ErrUnknownPlayer for duplicate ids, got %v", err)
	}
}

func TestPromotionCycleToTop(t *testing.T) {
	// [A,B,C]: C beats B, then C beats A. C relocates to rank 1 and the
	// final order is [C,A,B] with C, A, and B all compared.
	entries := board("a", "b", "c")

	res, err := ResolveComparison(entries, "c", "b")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	step, err := AdvancePromotion(res.Entries, *res.Promotion, "c")
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if step.Continue {
		t.Fatalf("cycle at index 2 duels rank 1 and must settle")
	}
	want := map[string]int{"c": 1, "a": 2, "b": 3}
	for id, rank := range want {
		if got := rankOf(t, step.Entries, id); got != rank {
			t.Fatalf("expected %s at rank %d, got %d", id, rank, got)
		}
	}
	for _, id := range []string{"a", "b", "c"} {
		if !step.Entries[indexOf(step.Entries, id)].Compared {
			t.Fatalf("expected %s compared after settle", id)
		}
	}
	assertPermutation(t, step.Entries)
}

func TestPromotionCycleLossSettlesBelowIncumbent(t *testing.T) {
	// [A,B,C,D,E]: E beats D opening a cycle at index 4, then loses the duel
	// against C. E settles immediately below C and D shifts down.
	entries := board("a", "b", "c", "d", "e")

	res, err := ResolveComparison(entries, "e", "d")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	step, err := AdvancePromotion(res.Entries, *res.Promotion, "c")
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if step.Continue {
		t.Fatalf("a loss must settle the cycle")
	}
	want := map[string]int{"a": 1, "b": 2, "c": 3, "e": 4, "d": 5}
	for id, rank := range want {
		if got := rankOf(t, step.Entries, id); got != rank {
			t.Fatalf("expected %s at rank %d, got %d", id, rank, got)
		}
	}
	assertPermutation(t, step.Entries)
}

func TestPromotionCycleContinuesWithoutMoves(t *testing.T) {
	entries := board("a", "b", "c", "d", "e")

	res, err := ResolveComparison(entries, "e", "d")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	step, err := AdvancePromotion(res.Entries, *res.Promotion, "e")
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if !step.Continue {
		t.Fatalf("win below the top must continue the cycle")
	}
	if step.Next.CycleIndex != 3 {
		t.Fatalf("expected cycle index 3, got %d", step.Next.CycleIndex)
	}
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		if rankOf(t, step.Entries, id) != i+1 {
			t.Fatalf("continuing cycle must not move entries")
		}
	}
}

func TestPromotionCycleBoundedSteps(t *testing.T) {
	for n := 3; n <= 12; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("p%02d", i+1)
		}
		entries := board(ids...)
		bottom := ids[n-1]

		res, err := ResolveComparison(entries, bottom, ids[n-2])
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		state := *res.Promotion
		current := res.Entries
		steps := 0
		for {
			steps++
			if steps > n {
				t.Fatalf("promotion cycle exceeded %d steps for n=%d", n, n)
			}
			step, err := AdvancePromotion(current, state, bottom)
			if err != nil {
				t.Fatalf("advance failed: %v", err)
			}
			current = step.Entries
			if !step.Continue {
				break
			}
			state = step.Next
		}
		if rankOf(t, current, bottom) != 1 {
			t.Fatalf("always-winning promoted entry must reach rank 1")
		}
		assertPermutation(t, current)
	}
}

func TestFullSessionProducesPermutationAllCompared(t *testing.T) {
	// Resolve pairs until none remain, always preferring the challenger, for
	// several board sizes. Ranks must stay a 1..N permutation and every entry
	// must end compared.
	for n := 2; n <= 9; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("p%02d", i+1)
		}
		entries := board(ids...)

		guard := 0
		for {
			guard++
			if guard > n*n {
				t.Fatalf("session did not terminate for n=%d", n)
			}
			pair, ok := NextComparisonPair(entries)
			if !ok {
				break
			}
			res, err := ResolveComparison(entries, pair.ChallengerID, pair.IncumbentID)
			if err != nil {
				t.Fatalf("resolve failed: %v", err)
			}
			entries = res.Entries
			if res.Promotion == nil {
				continue
			}
			state := *res.Promotion
			for {
				step, err := AdvancePromotion(entries, state, state.PromotedID)
				if err != nil {
					t.Fatalf("advance failed: %v", err)
				}
				entries = step.Entries
				if !step.Continue {
					break
				}
				state = step.Next
			}
		}
		if !Complete(entries) {
			t.Fatalf("expected all entries compared for n=%d", n)
		}
		assertPermutation(t, entries)
	}
}

func TestResetClearsFlagsKeepsOrder(t *testing.T) {
	entries := board("a", "b", "c")
	entries[0].Compared = true
	entries[1].Compared = true
	entries[2].Compared = true

	reset := Reset(entries)
	for i, id := range []string{"a", "b", "c"} {
		if rankOf(t, reset, id) != i+1 {
			t.Fatalf("reset must preserve order")
		}
		if reset[indexOf(reset, id)].Compared {
			t.Fatalf("reset must clear compared flags")
		}
	}
}

func TestMoveToRankRenumbersContiguously(t *testing.T) {
	entries := board("a", "b", "c", "d")
	moved := moveToRank(entries, "d", 2)
	want := map[string]int{"a": 1, "d": 2, "b": 3, "c": 4}
	for id, rank := range want {
		if got := rankOf(t, moved, id); got != rank {
			t.Fatalf("expected %s at rank %d, got %d", id, rank, got)
		}
	}
	assertPermutation(t, moved)
}
