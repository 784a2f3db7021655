// Package lineup merges two users' ranked player lists into paired slot
// assignments. Distribution is pure: the same inputs always yield the same
// lineup, and nothing here is persisted.
package lineup

import (
	"gridiron/contexts/league-play/matchup-service/domain/entities"
)

// Slot is one filled (or empty) lineup position for one side. PlayerID is
// empty when the side's pool ran out before the slot could be filled.
// OriginRank is the 1-indexed position the player held on its side's board.
type Slot struct {
	Position   entities.Position
	PlayerID   string
	OriginRank int
	Projected  float64
	Live       float64
}

func (s Slot) Empty() bool {
	return s.PlayerID == ""
}

// Result is one full two-sided distribution run. Burned lists the players
// both sides wanted at the same moment; they fill no slot for either side.
type Result struct {
	SideA  []Slot
	SideB  []Slot
	TotalA float64
	TotalB float64
	Burned []string
}

type pick struct {
	playerID   string
	originRank int
}

// Distribute walks the fixed position order and fills each position's
// negotiated capacity from the two sides' remaining ranked lists. A single
// assigned set spans every position in the run, so a player can never occupy
// two slots even across overlapping-eligibility positions. When both sides'
// top remaining picks collide the player is burned: removed from both pools
// without filling the slot, which is then retried.
func Distribute(
	order []entities.Position,
	rankedA map[entities.Position][]string,
	rankedB map[entities.Position][]string,
	capacity entities.SlotCapacity,
	snapshot map[string]entities.PlayerView,
	format entities.ScoringFormat,
	currentWeek int,
) Result {
	assigned := make(map[string]bool)
	result := Result{}

	poolA := clonePools(rankedA)
	poolB := clonePools(rankedB)

	for _, position := range order {
		want := capacity.ValueFor(position)
		if want <= 0 {
			continue
		}
		filled := 0
		for filled < want {
			pickA, okA := topPick(poolA[position], assigned)
			pickB, okB := topPick(poolB[position], assigned)

			if !okA || !okB {
				result.SideA = append(result.SideA, Slot{Position: position})
				result.SideB = append(result.SideB, Slot{Position: position})
				filled++
				continue
			}

			if pickA.playerID == pickB.playerID {
				// Conflict: both sides want the same player right now. Burn
				// it and retry the slot without capacity credit.
				assigned[pickA.playerID] = true
				result.Burned = append(result.Burned, pickA.playerID)
				continue
			}

			assigned[pickA.playerID] = true
			assigned[pickB.playerID] = true
			result.SideA = append(result.SideA, buildSlot(position, pickA, snapshot, format, currentWeek))
			result.SideB = append(result.SideB, buildSlot(position, pickB, snapshot, format, currentWeek))
			filled++
		}
	}

	for _, slot := range result.SideA {
		result.TotalA += slot.Live
	}
	for _, slot := range result.SideB {
		result.TotalB += slot.Live
	}
	return result
}

// topPick scans a side's ranked list for the first player not yet assigned
// anywhere in this run. originRank is the player's original 1-indexed
// position on the list, not its position after removals.
func topPick(ranked []pick, assigned map[string]bool) (pick, bool) {
	for _, candidate := range ranked {
		if !assigned[candidate.playerID] {
			return candidate, true
		}
	}
	return pick{}, false
}

func buildSlot(
	position entities.Position,
	chosen pick,
	snapshot map[string]entities.PlayerView,
	format entities.ScoringFormat,
	currentWeek int,
) Slot {
	slot := Slot{
		Position:   position,
		PlayerID:   chosen.playerID,
		OriginRank: chosen.originRank,
	}
	if view, ok := snapshot[chosen.playerID]; ok {
		slot.Projected = view.ProjectedPoints(format)
		slot.Live = view.LivePoints(format, currentWeek)
	}
	return slot
}

func clonePools(ranked map[entities.Position][]string) map[entities.Position][]pick {
	pools := make(map[entities.Position][]pick, len(ranked))
	for position, ids := range ranked {
		picks := make([]pick, 0, len(ids))
		for i, id := range ids {
			picks = append(picks, pick{playerID: id, originRank: i + 1})
		}
		pools[position] = picks
	}
	return pools
}
