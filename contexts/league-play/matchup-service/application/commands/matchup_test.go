package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	matchupservice "gridiron/contexts/league-play/matchup-service"
	"gridiron/contexts/league-play/matchup-service/application/commands"
	"gridiron/contexts/league-play/matchup-service/domain/entities"
	domainerrors "gridiron/contexts/league-play/matchup-service/domain/errors"
	"gridiron/contexts/league-play/matchup-service/domain/lineup"
)

const (
	userA = "user-a"
	userB = "user-b"
)

func newMatchup(t *testing.T, module matchupservice.Module) entities.Matchup {
	t.Helper()
	matchup, err := module.Matchups.GetOrCreate(context.Background(), userA, userB, entities.FormatPPR)
	if err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	return matchup
}

func qbOnlyCapacity() entities.SlotCapacity {
	return entities.SlotCapacity{QB: 1}
}

func seedQBScores(module matchupservice.Module, pointsA, pointsB float64) {
	module.Store.SetRanking(userA, entities.PositionQB, entities.FormatPPR, []string{"qb-a"})
	module.Store.SetRanking(userB, entities.PositionQB, entities.FormatPPR, []string{"qb-b"})
	module.Store.SetPlayerView(entities.PlayerView{
		PlayerID:  "qb-a",
		Position:  entities.PositionQB,
		WeekStats: map[entities.ScoringFormat]float64{entities.FormatPPR: pointsA},
		StatsWeek: 1,
	})
	module.Store.SetPlayerView(entities.PlayerView{
		PlayerID:  "qb-b",
		Position:  entities.PositionQB,
		WeekStats: map[entities.ScoringFormat]float64{entities.FormatPPR: pointsB},
		StatsWeek: 1,
	})
	module.Store.SetWeek(1)
}

func activate(t *testing.T, module matchupservice.Module, matchupID string) {
	t.Helper()
	if _, err := module.Matchups.Confirm(context.Background(), matchupID, userA); err != nil {
		t.Fatalf("confirm a failed: %v", err)
	}
	result, err := module.Matchups.Confirm(context.Background(), matchupID, userB)
	if err != nil {
		t.Fatalf("confirm b failed: %v", err)
	}
	if !result.Activated || result.Matchup.Status != entities.StatusActive {
		t.Fatalf("expected activation, got %+v", result)
	}
}

func TestGetOrCreateNormalizesPair(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)

	first, err := module.Matchups.GetOrCreate(context.Background(), userB, userA, entities.FormatPPR)
	if err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	if first.UserAID != userA || first.UserBID != userB {
		t.Fatalf("expected normalized pair, got %s/%s", first.UserAID, first.UserBID)
	}
	if first.Status != entities.StatusPending {
		t.Fatalf("expected pending, got %s", first.Status)
	}
	if first.CapacityA != entities.DefaultCapacity() || first.CapacityB != entities.DefaultCapacity() {
		t.Fatalf("expected default capacities, got %+v", first)
	}

	second, err := module.Matchups.GetOrCreate(context.Background(), userA, userB, entities.FormatPPR)
	if err != nil {
		t.Fatalf("second access failed: %v", err)
	}
	if second.MatchupID != first.MatchupID {
		t.Fatalf("expected same matchup for both orderings, got %s and %s", first.MatchupID, second.MatchupID)
	}
}

func TestGetOrCreateRejectsSelfAndBadFormat(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)

	if _, err := module.Matchups.GetOrCreate(context.Background(), userA, userA, entities.FormatPPR); !errors.Is(err, domainerrors.ErrSelfMatchup) {
		t.Fatalf("expected ErrSelfMatchup, got %v", err)
	}
	if _, err := module.Matchups.GetOrCreate(context.Background(), userA, userB, "superflex"); !errors.Is(err, domainerrors.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestEditCapacityTouchesOwnSideOnly(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)
	matchup := newMatchup(t, module)

	result, err := module.Matchups.EditCapacity(context.Background(), commands.EditCapacityCommand{
		MatchupID: matchup.MatchupID,
		EditorID:  userB,
		Capacity:  qbOnlyCapacity(),
	})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if result.Matchup.CapacityB != qbOnlyCapacity() {
		t.Fatalf("expected side b capacity replaced, got %+v", result.Matchup.CapacityB)
	}
	if result.Matchup.CapacityA != entities.DefaultCapacity() {
		t.Fatalf("side a capacity must stay untouched, got %+v", result.Matchup.CapacityA)
	}
	if result.Matchup.ConfirmedB {
		t.Fatalf("edit must reset the editor's confirmation")
	}
}

func TestLineupHonorsNegotiatedCapacityMinimum(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)
	matchup := newMatchup(t, module)

	if _, err := module.Matchups.EditCapacity(context.Background(), commands.EditCapacityCommand{
		MatchupID: matchup.MatchupID,
		EditorID:  userA,
		Capacity:  entities.SlotCapacity{QB: 1, RB: 2},
	}); err != nil {
		t.Fatalf("edit side a failed: %v", err)
	}
	if _, err := module.Matchups.EditCapacity(context.Background(), commands.EditCapacityCommand{
		MatchupID: matchup.MatchupID,
		EditorID:  userB,
		Capacity:  entities.SlotCapacity{QB: 2, RB: 1},
	}); err != nil {
		t.Fatalf("edit side b failed: %v", err)
	}

	module.Store.SetRanking(userA, entities.PositionQB, entities.FormatPPR, []string{"qb-a1", "qb-a2"})
	module.Store.SetRanking(userA, entities.PositionRB, entities.FormatPPR, []string{"rb-a1", "rb-a2"})
	module.Store.SetRanking(userB, entities.PositionQB, entities.FormatPPR, []string{"qb-b1", "qb-b2"})
	module.Store.SetRanking(userB, entities.PositionRB, entities.FormatPPR, []string{"rb-b1", "rb-b2"})
	for _, id := range []string{"qb-a1", "qb-a2", "qb-b1", "qb-b2"} {
		module.Store.SetPlayerView(entities.PlayerView{PlayerID: id, Position: entities.PositionQB})
	}
	for _, id := range []string{"rb-a1", "rb-a2", "rb-b1", "rb-b2"} {
		module.Store.SetPlayerView(entities.PlayerView{PlayerID: id, Position: entities.PositionRB})
	}
	module.Store.SetWeek(1)

	result, err := module.Lineups.ComputeLineup(context.Background(), matchup.MatchupID)
	if err != nil {
		t.Fatalf("compute lineup failed: %v", err)
	}
	for side, slots := range map[string][]lineup.Slot{
		"a": result.Distribution.SideA,
		"b": result.Distribution.SideB,
	} {
		counts := make(map[entities.Position]int)
		for _, slot := range slots {
			counts[slot.Position]++
		}
		if counts[entities.PositionQB] != 1 {
			t.Fatalf("side %s: expected min(1,2)=1 QB slot, got %d", side, counts[entities.PositionQB])
		}
		if counts[entities.PositionRB] != 1 {
			t.Fatalf("side %s: expected min(2,1)=1 RB slot, got %d", side, counts[entities.PositionRB])
		}
	}
}

func TestEditCapacityValidation(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)
	matchup := newMatchup(t, module)

	if _, err := module.Matchups.EditCapacity(context.Background(), commands.EditCapacityCommand{
		MatchupID: matchup.MatchupID,
		EditorID:  userA,
		Capacity:  entities.SlotCapacity{QB: -1},
	}); !errors.Is(err, domainerrors.ErrMalformedCapacity) {
		t.Fatalf("expected ErrMalformedCapacity, got %v", err)
	}
	if _, err := module.Matchups.EditCapacity(context.Background(), commands.EditCapacityCommand{
		MatchupID: matchup.MatchupID,
		EditorID:  "stranger",
		Capacity:  qbOnlyCapacity(),
	}); !errors.Is(err, domainerrors.ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
}

func TestConfirmBothSidesActivatesAndEmitsEvent(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)
	matchup := newMatchup(t, module)

	first, err := module.Matchups.Confirm(context.Background(), matchup.MatchupID, userA)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if first.Activated || first.Matchup.Status != entities.StatusPending {
		t.Fatalf("single confirmation must not activate, got %+v", first)
	}

	second, err := module.Matchups.Confirm(context.Background(), matchup.MatchupID, userB)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if !second.Activated || second.Matchup.Status != entities.StatusActive {
		t.Fatalf("expected activation, got %+v", second)
	}

	pending, err := module.Store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("outbox list failed: %v", err)
	}
	if len(pending) != 1 || pending[0].EventType != commands.EventMatchupActivated {
		t.Fatalf("expected one activation event, got %+v", pending)
	}
	var envelope struct {
		EventType string          `json:"event_type"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(pending[0].Payload, &envelope); err != nil {
		t.Fatalf("envelope decode failed: %v", err)
	}
	if envelope.EventType != commands.EventMatchupActivated {
		t.Fatalf("expected activation envelope, got %s", envelope.EventType)
	}
}

func TestEditWhileActiveRevertsToPending(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)
	matchup := newMatchup(t, module)
	activate(t, module, matchup.MatchupID)

	result, err := module.Matchups.EditCapacity(context.Background(), commands.EditCapacityCommand{
		MatchupID: matchup.MatchupID,
		EditorID:  userA,
		Capacity:  qbOnlyCapacity(),
	})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if result.Matchup.Status != entities.StatusPending {
		t.Fatalf("edit on active matchup must revert to pending, got %s", result.Matchup.Status)
	}
	if result.Matchup.ConfirmedA {
		t.Fatalf("editor confirmation must reset")
	}
	if !result.Matchup.ConfirmedB {
		t.Fatalf("other side's confirmation must survive the edit")
	}
}

func TestEditCapacityRevertsOnStoreFailure(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)
	matchup := newMatchup(t, module)

	module.Store.FailNextSaves(1)
	result, err := module.Matchups.EditCapacity(context.Background(), commands.EditCapacityCommand{
		MatchupID: matchup.MatchupID,
		EditorID:  userA,
		Capacity:  qbOnlyCapacity(),
	})
	if err == nil {
		t.Fatalf("expected store failure to surface")
	}
	if result.Applied {
		t.Fatalf("failed edit must not report as applied")
	}
	if result.Matchup.CapacityA != entities.DefaultCapacity() {
		t.Fatalf("failed edit must hand back the previous state, got %+v", result.Matchup.CapacityA)
	}

	stored, err := module.Matchups.Matchups.GetMatchup(context.Background(), matchup.MatchupID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if stored.CapacityA != entities.DefaultCapacity() {
		t.Fatalf("store must keep the pre-edit capacity, got %+v", stored.CapacityA)
	}
}

func TestFinalizeDecidesWinnerByStrictGreater(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)
	matchup := newMatchup(t, module)
	seedQBScores(module, 24.5, 17.25)

	for _, userID := range []string{userA, userB} {
		if _, err := module.Matchups.EditCapacity(context.Background(), commands.EditCapacityCommand{
			MatchupID: matchup.MatchupID,
			EditorID:  userID,
			Capacity:  qbOnlyCapacity(),
		}); err != nil {
			t.Fatalf("edit failed: %v", err)
		}
	}
	activate(t, module, matchup.MatchupID)

	result, err := module.Matchups.Finalize(context.Background(), matchup.MatchupID)
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if result.Matchup.Status != entities.StatusFinal {
		t.Fatalf("expected final, got %s", result.Matchup.Status)
	}
	if result.ScoreA != 24.5 || result.ScoreB != 17.25 {
		t.Fatalf("unexpected scores %v / %v", result.ScoreA, result.ScoreB)
	}
	if result.Matchup.WinnerID != userA {
		t.Fatalf("expected %s to win, got %q", userA, result.Matchup.WinnerID)
	}

	pending, err := module.Store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("outbox list failed: %v", err)
	}
	finalized := 0
	for _, row := range pending {
		if row.EventType == commands.EventMatchupFinalized {
			finalized++
		}
	}
	if finalized != 1 {
		t.Fatalf("expected one finalized event, got %d", finalized)
	}
}

func TestFinalizeTieLeavesNoWinner(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)
	matchup := newMatchup(t, module)
	seedQBScores(module, 20.0, 20.0)

	for _, userID := range []string{userA, userB} {
		if _, err := module.Matchups.EditCapacity(context.Background(), commands.EditCapacityCommand{
			MatchupID: matchup.MatchupID,
			EditorID:  userID,
			Capacity:  qbOnlyCapacity(),
		}); err != nil {
			t.Fatalf("edit failed: %v", err)
		}
	}
	activate(t, module, matchup.MatchupID)

	result, err := module.Matchups.Finalize(context.Background(), matchup.MatchupID)
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if result.Matchup.WinnerID != "" {
		t.Fatalf("tie must leave winner empty, got %q", result.Matchup.WinnerID)
	}
}

func TestFinalizeRequiresActiveMatchup(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)
	matchup := newMatchup(t, module)
	seedQBScores(module, 10.0, 5.0)

	if _, err := module.Matchups.Finalize(context.Background(), matchup.MatchupID); !errors.Is(err, domainerrors.ErrMatchupNotActive) {
		t.Fatalf("expected ErrMatchupNotActive on pending, got %v", err)
	}

	activate(t, module, matchup.MatchupID)
	if _, err := module.Matchups.Finalize(context.Background(), matchup.MatchupID); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if _, err := module.Matchups.Finalize(context.Background(), matchup.MatchupID); !errors.Is(err, domainerrors.ErrMatchupNotActive) {
		t.Fatalf("second finalize must refuse, got %v", err)
	}
}

func TestEditAfterFinalIsRejected(t *testing.T) {
	module := matchupservice.NewInMemoryModule(nil, nil)
	matchup := newMatchup(t, module)
	seedQBScores(module, 10.0, 5.0)
	activate(t, module, matchup.MatchupID)
	if _, err := module.Matchups.Finalize(context.Background(), matchup.MatchupID); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if _, err := module.Matchups.EditCapacity(context.Background(), commands.EditCapacityCommand{
		MatchupID: matchup.MatchupID,
		EditorID:  userA,
		Capacity:  qbOnlyCapacity(),
	}); !errors.Is(err, domainerrors.ErrMatchupFinal) {
		t.Fatalf("expected ErrMatchupFinal, got %v", err)
	}
	if _, err := module.Matchups.Confirm(context.Background(), matchup.MatchupID, userA); !errors.Is(err, domainerrors.ErrMatchupFinal) {
		t.Fatalf("expected ErrMatchupFinal on confirm, got %v", err)
	}
}
