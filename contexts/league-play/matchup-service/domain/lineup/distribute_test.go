package lineup

import (
	"testing"

	"gridiron/contexts/league-play/matchup-service/domain/entities"
)

func view(playerID string, position entities.Position, projected, live float64, statsWeek int) entities.PlayerView {
	return entities.PlayerView{
		PlayerID: playerID,
		Position: position,
		Projections: map[entities.ScoringFormat]float64{
			entities.FormatPPR: projected,
		},
		WeekStats: map[entities.ScoringFormat]float64{
			entities.FormatPPR: live,
		},
		StatsWeek: statsWeek,
	}
}

func TestDistributeAssignsDistinctTopPicks(t *testing.T) {
	snapshot := map[string]entities.PlayerView{
		"x": view("x", entities.PositionRB, 20, 12.5, 3),
		"y": view("y", entities.PositionRB, 18, 9.0, 3),
	}
	result := Distribute(
		[]entities.Position{entities.PositionRB},
		map[entities.Position][]string{entities.PositionRB: {"x", "y"}},
		map[entities.Position][]string{entities.PositionRB: {"y", "x"}},
		entities.SlotCapacity{RB: 1},
		snapshot,
		entities.FormatPPR,
		3,
	)
	if len(result.SideA) != 1 || len(result.SideB) != 1 {
		t.Fatalf("expected one slot per side, got %d and %d", len(result.SideA), len(result.SideB))
	}
	if result.SideA[0].PlayerID != "x" || result.SideB[0].PlayerID != "y" {
		t.Fatalf("each side must get its own top pick, got %s and %s",
			result.SideA[0].PlayerID, result.SideB[0].PlayerID)
	}
	if result.SideA[0].OriginRank != 1 || result.SideB[0].OriginRank != 1 {
		t.Fatalf("origin ranks must reflect board positions")
	}
	if result.SideA[0].Projected != 20 || result.SideA[0].Live != 12.5 {
		t.Fatalf("slot scores must come from the snapshot, got %+v", result.SideA[0])
	}
}

func TestDistributeConflictBurnsAndRetries(t *testing.T) {
	// A=[X,Y], B=[X,Z], capacity 2: slot 1 burns X and becomes Y vs Z;
	// slot 2 degrades to an empty pair. Capacity is still reported filled.
	snapshot := map[string]entities.PlayerView{
		"x": view("x", entities.PositionWR, 20, 15, 5),
		"y": view("y", entities.PositionWR, 15, 8, 5),
		"z": view("z", entities.PositionWR, 14, 6, 5),
	}
	result := Distribute(
		[]entities.Position{entities.PositionWR},
		map[entities.Position][]string{entities.PositionWR: {"x", "y"}},
		map[entities.Position][]string{entities.PositionWR: {"x", "z"}},
		entities.SlotCapacity{WR: 2},
		snapshot,
		entities.FormatPPR,
		5,
	)
	if len(result.SideA) != 2 || len(result.SideB) != 2 {
		t.Fatalf("capacity must still report two slots, got %d and %d", len(result.SideA), len(result.SideB))
	}
	if result.SideA[0].PlayerID != "y" || result.SideB[0].PlayerID != "z" {
		t.Fatalf("slot 1 must become y vs z after the burn, got %s vs %s",
			result.SideA[0].PlayerID, result.SideB[0].PlayerID)
	}
	if !result.SideA[1].Empty() || !result.SideB[1].Empty() {
		t.Fatalf("slot 2 must degrade to an empty pair")
	}
	if len(result.Burned) != 1 || result.Burned[0] != "x" {
		t.Fatalf("expected exactly x burned, got %v", result.Burned)
	}
}

func TestDistributeNeverAssignsPlayerTwice(t *testing.T) {
	// rb-1 tops both RB lists and also leads both FLEX lists; the shared
	// assigned set must keep it to a single slot across positions.
	snapshot := map[string]entities.PlayerView{}
	for _, id := range []string{"rb-1", "rb-2", "rb-3", "wr-1", "wr-2"} {
		snapshot[id] = view(id, entities.PositionRB, 10, 5, 2)
	}
	rankedA := map[entities.Position][]string{
		entities.PositionRB:   {"rb-1", "rb-2", "rb-3"},
		entities.PositionFlex: {"rb-1", "wr-1", "rb-3"},
	}
	rankedB := map[entities.Position][]string{
		entities.PositionRB:   {"rb-2", "rb-1", "rb-3"},
		entities.PositionFlex: {"rb-1", "wr-2", "rb-3"},
	}
	result := Distribute(
		[]entities.Position{entities.PositionRB, entities.PositionFlex},
		rankedA,
		rankedB,
		entities.SlotCapacity{RB: 1, Flex: 1},
		snapshot,
		entities.FormatPPR,
		2,
	)
	seen := map[string]int{}
	for _, slot := range append(append([]Slot{}, result.SideA...), result.SideB...) {
		if slot.Empty() {
			continue
		}
		seen[slot.PlayerID]++
		if seen[slot.PlayerID] > 1 {
			t.Fatalf("player %s assigned more than once", slot.PlayerID)
		}
	}
}

func TestDistributeTotalsSumLiveScores(t *testing.T) {
	snapshot := map[string]entities.PlayerView{
		"a1": view("a1", entities.PositionQB, 19, 11.25, 7),
		"a2": view("a2", entities.PositionRB, 17, 6.75, 7),
		"b1": view("b1", entities.PositionQB, 18, 14.5, 7),
		"b2": view("b2", entities.PositionRB, 16, 3.25, 7),
	}
	result := Distribute(
		[]entities.Position{entities.PositionQB, entities.PositionRB},
		map[entities.Position][]string{
			entities.PositionQB: {"a1"},
			entities.PositionRB: {"a2"},
		},
		map[entities.Position][]string{
			entities.PositionQB: {"b1"},
			entities.PositionRB: {"b2"},
		},
		entities.SlotCapacity{QB: 1, RB: 1},
		snapshot,
		entities.FormatPPR,
		7,
	)
	var sumA, sumB float64
	for _, slot := range result.SideA {
		sumA += slot.Live
	}
	for _, slot := range result.SideB {
		sumB += slot.Live
	}
	if result.TotalA != sumA || result.TotalB != sumB {
		t.Fatalf("totals must equal the sum of slot live scores")
	}
	if result.TotalA != 18.0 || result.TotalB != 17.75 {
		t.Fatalf("unexpected totals %f / %f", result.TotalA, result.TotalB)
	}
}

func TestDistributeStaleStatsScoreZero(t *testing.T) {
	snapshot := map[string]entities.PlayerView{
		"a1": view("a1", entities.PositionQB, 19, 22.0, 6),
		"b1": view("b1", entities.PositionQB, 18, 14.0, 7),
	}
	result := Distribute(
		[]entities.Position{entities.PositionQB},
		map[entities.Position][]string{entities.PositionQB: {"a1"}},
		map[entities.Position][]string{entities.PositionQB: {"b1"}},
		entities.SlotCapacity{QB: 1},
		snapshot,
		entities.FormatPPR,
		7,
	)
	if result.SideA[0].Live != 0 {
		t.Fatalf("week-6 stats must count zero in week 7, got %f", result.SideA[0].Live)
	}
	if result.SideB[0].Live != 14.0 {
		t.Fatalf("current-week stats must count, got %f", result.SideB[0].Live)
	}
}

func TestDistributeZeroCapacitySkipsPosition(t *testing.T) {
	result := Distribute(
		[]entities.Position{entities.PositionK},
		map[entities.Position][]string{entities.PositionK: {"k1"}},
		map[entities.Position][]string{entities.PositionK: {"k2"}},
		entities.SlotCapacity{},
		map[string]entities.PlayerView{},
		entities.FormatPPR,
		1,
	)
	if len(result.SideA) != 0 || len(result.SideB) != 0 {
		t.Fatalf("zero capacity must emit no slots")
	}
}

func TestDistributeEmptyListDegradesToEmptySlots(t *testing.T) {
	result := Distribute(
		[]entities.Position{entities.PositionTE},
		map[entities.Position][]string{entities.PositionTE: {"te-1", "te-2"}},
		map[entities.Position][]string{},
		entities.SlotCapacity{TE: 2},
		map[string]entities.PlayerView{},
		entities.FormatPPR,
		1,
	)
	if len(result.SideA) != 2 || len(result.SideB) != 2 {
		t.Fatalf("expected two degraded slots per side")
	}
	for i := range result.SideA {
		if !result.SideA[i].Empty() || !result.SideB[i].Empty() {
			t.Fatalf("an empty opposing list must degrade every slot for both sides")
		}
	}
}
