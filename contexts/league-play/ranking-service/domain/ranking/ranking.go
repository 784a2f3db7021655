// Package ranking holds the pure ordering rules for ranking boards. Every
// function takes entries in and returns new entries out; callers own
// persistence and session state.
package ranking

import (
	"sort"

	"gridiron/contexts/league-play/ranking-service/domain/entities"
	domainerrors "gridiron/contexts/league-play/ranking-service/domain/errors"
)

// Pair is the next binary choice to put in front of the user. Challenger is
// the lowest-ranked entry that has not been compared yet; Incumbent is its
// immediate, already-settled superior.
type Pair struct {
	ChallengerID string
	IncumbentID  string
}

// Resolution is the outcome of resolving one comparison. When Promotion is
// non-nil the entries are unchanged and a promotion cycle must be run before
// the next pair is offered.
type Resolution struct {
	Entries   []entities.RankingEntry
	Promotion *entities.PromotionState
}

// PromotionStep is the outcome of one promotion duel. While Continue is true
// the cycle is still open and Next holds the updated state; otherwise the
// promoted entry has settled and Entries carries the reordered board.
type PromotionStep struct {
	Entries  []entities.RankingEntry
	Continue bool
	Next     entities.PromotionState
}

// NextComparisonPair finds the lowest-ranked entry with Compared false and
// pairs it against the entry one rank above it. An entry holding rank 1 is
// paired with rank 2. Returns ok false when every entry is compared or the
// board has fewer than two entries.
func NextComparisonPair(entries []entities.RankingEntry) (Pair, bool) {
	if len(entries) < 2 {
		return Pair{}, false
	}
	byRank := sortedByRank(entries)
	var challenger *entities.RankingEntry
	for i := len(byRank) - 1; i >= 0; i-- {
		if !byRank[i].Compared {
			challenger = &byRank[i]
			break
		}
	}
	if challenger == nil {
		return Pair{}, false
	}
	opponentRank := challenger.Rank - 1
	if challenger.Rank == 1 {
		opponentRank = 2
	}
	opponent, ok := entryAtRank(byRank, opponentRank)
	if !ok {
		return Pair{}, false
	}
	return Pair{ChallengerID: challenger.PlayerID, IncumbentID: opponent.PlayerID}, true
}

// ResolveComparison applies one user choice.
//
// A loser holding rank 1 settles immediately: there is no entry above it to
// duel, so the winner relocates to rank 1 and both entries are marked
// compared. A winner ranked numerically below a loser at rank 2 or worse
// opens a promotion cycle starting at the loser's rank, leaving the entries
// untouched. Any other outcome confirms the existing order and only marks
// both entries compared. Unknown IDs are a caller bug and surface as
// ErrUnknownPlayer.
func ResolveComparison(
	entries []entities.RankingEntry,
	winnerID string,
	loserID string,
) (Resolution, error) {
	next := cloneEntries(entries)
	winner := indexOf(next, winnerID)
	loser := indexOf(next, loserID)
	if winner < 0 || loser < 0 || winnerID == loserID {
		return Resolution{}, domainerrors.ErrUnknownPlayer
	}

	if next[loser].Rank == 1 {
		next = moveToRank(next, winnerID, 1)
		next = markCompared(next, winnerID, loserID)
		return Resolution{Entries: next}, nil
	}

	if next[winner].Rank > next[loser].Rank {
		return Resolution{
			Entries: cloneEntries(entries),
			Promotion: &entities.PromotionState{
				PromotedID:    winnerID,
				CycleIndex:    next[loser].Rank,
				OriginLoserID: loserID,
			},
		}, nil
	}

	next[winner].Compared = true
	next[loser].Compared = true
	return Resolution{Entries: next}, nil
}

// IncumbentForCycle returns the player the promoted entry duels next: the
// entry ranked immediately above the cycle index.
func IncumbentForCycle(entries []entities.RankingEntry, cycleIndex int) (string, bool) {
	incumbent, ok := entryAtRank(entries, cycleIndex-1)
	if !ok {
		return "", false
	}
	return incumbent.PlayerID, true
}

// AdvancePromotion applies one promotion duel between the promoted entry and
// the incumbent ranked immediately above the cycle index. chosenID names the
// duel winner.
//
// A promoted win above index 1 only decrements the index; no entry moves
// until the cycle settles. A win at the top relocates the promoted entry to
// rank 1. A loss relocates it immediately below the incumbent that beat it.
// On settle the promoted entry, the origin loser, and the final incumbent are
// marked compared.
func AdvancePromotion(
	entries []entities.RankingEntry,
	state entities.PromotionState,
	chosenID string,
) (PromotionStep, error) {
	next := cloneEntries(entries)
	promoted := indexOf(next, state.PromotedID)
	if promoted < 0 {
		return PromotionStep{}, domainerrors.ErrUnknownPlayer
	}
	incumbent, ok := entryAtRank(next, state.CycleIndex-1)
	if !ok {
		return PromotionStep{}, domainerrors.ErrPromotionMismatch
	}
	if chosenID != state.PromotedID && chosenID != incumbent.PlayerID {
		return PromotionStep{}, domainerrors.ErrUnknownPlayer
	}

	if chosenID == state.PromotedID {
		if state.CycleIndex-1 > 1 {
			return PromotionStep{
				Entries:  next,
				Continue: true,
				Next: entities.PromotionState{
					PromotedID:    state.PromotedID,
					CycleIndex:    state.CycleIndex - 1,
					OriginLoserID: state.OriginLoserID,
				},
			}, nil
		}
		next = moveToRank(next, state.PromotedID, 1)
		next = markCompared(next, state.PromotedID, state.OriginLoserID, incumbent.PlayerID)
		return PromotionStep{Entries: next}, nil
	}

	next = moveToRank(next, state.PromotedID, state.CycleIndex)
	next = markCompared(next, state.PromotedID, state.OriginLoserID, incumbent.PlayerID)
	return PromotionStep{Entries: next}, nil
}

// Reset clears every compared flag and any notion of an open cycle. Rank
// order is preserved; reset restarts the wizard, not the board.
func Reset(entries []entities.RankingEntry) []entities.RankingEntry {
	next := cloneEntries(entries)
	for i := range next {
		next[i].Compared = false
	}
	return next
}

// Complete reports whether every entry has been compared.
func Complete(entries []entities.RankingEntry) bool {
	for _, entry := range entries {
		if !entry.Compared {
			return false
		}
	}
	return true
}

// moveToRank removes the entry from its current position, reinserts it at the
// 1-indexed target, and renumbers everything by sequence index. This is the
// only way ranks change.
func moveToRank(entries []entities.RankingEntry, playerID string, target int) []entities.RankingEntry {
	byRank := sortedByRank(entries)
	idx := indexOf(byRank, playerID)
	if idx < 0 {
		return entries
	}
	moved := byRank[idx]
	rest := append(byRank[:idx:idx], byRank[idx+1:]...)
	if target < 1 {
		target = 1
	}
	if target > len(rest)+1 {
		target = len(rest) + 1
	}
	reordered := make([]entities.RankingEntry, 0, len(entries))
	reordered = append(reordered, rest[:target-1]...)
	reordered = append(reordered, moved)
	reordered = append(reordered, rest[target-1:]...)
	for i := range reordered {
		reordered[i].Rank = i + 1
	}
	return reordered
}

func markCompared(entries []entities.RankingEntry, playerIDs ...string) []entities.RankingEntry {
	for _, playerID := range playerIDs {
		if idx := indexOf(entries, playerID); idx >= 0 {
			entries[idx].Compared = true
		}
	}
	return entries
}

func sortedByRank(entries []entities.RankingEntry) []entities.RankingEntry {
	byRank := cloneEntries(entries)
	sort.Slice(byRank, func(i, j int) bool {
		return byRank[i].Rank < byRank[j].Rank
	})
	return byRank
}

func entryAtRank(entries []entities.RankingEntry, rank int) (entities.RankingEntry, bool) {
	for _, entry := range entries {
		if entry.Rank == rank {
			return entry, true
		}
	}
	return entities.RankingEntry{}, false
}

func indexOf(entries []entities.RankingEntry, playerID string) int {
	for i, entry := range entries {
		if entry.PlayerID == playerID {
			return i
		}
	}
	return -1
}

func cloneEntries(entries []entities.RankingEntry) []entities.RankingEntry {
	next := make([]entities.RankingEntry, len(entries))
	copy(next, entries)
	return next
}
