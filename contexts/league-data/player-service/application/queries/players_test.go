package queries_test

import (
	"context"
	"errors"
	"testing"

	"gridiron/contexts/league-data/player-service/adapters/memory"
	"gridiron/contexts/league-data/player-service/application/queries"
	"gridiron/contexts/league-data/player-service/domain/entities"
	domainerrors "gridiron/contexts/league-data/player-service/domain/errors"
)

func newPlayerUseCase(store *memory.Store) queries.PlayerUseCase {
	return queries.PlayerUseCase{Players: store, Weeks: store}
}

func TestListByPositionOrdersByProjection(t *testing.T) {
	store := memory.NewStore([]entities.Player{
		{
			PlayerID: "rb-low", Position: entities.PositionRB, Active: true,
			Projections: map[entities.ScoringFormat]float64{entities.FormatPPR: 9.5},
		},
		{
			PlayerID: "rb-high", Position: entities.PositionRB, Active: true,
			Projections: map[entities.ScoringFormat]float64{entities.FormatPPR: 18.25},
		},
		{
			PlayerID: "rb-retired", Position: entities.PositionRB, Active: false,
			Projections: map[entities.ScoringFormat]float64{entities.FormatPPR: 22},
		},
		{
			PlayerID: "wr-1", Position: entities.PositionWR, Active: true,
			Projections: map[entities.ScoringFormat]float64{entities.FormatPPR: 15},
		},
	})

	uc := newPlayerUseCase(store)
	players, err := uc.ListByPosition(context.Background(), entities.PositionRB, entities.FormatPPR)
	if err != nil {
		t.Fatalf("list by position: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 active running backs, got %d", len(players))
	}
	if players[0].PlayerID != "rb-high" || players[1].PlayerID != "rb-low" {
		t.Fatalf("expected projection-descending order, got %s then %s", players[0].PlayerID, players[1].PlayerID)
	}
}

func TestListByPositionBreaksTiesByPlayerID(t *testing.T) {
	store := memory.NewStore([]entities.Player{
		{
			PlayerID: "te-b", Position: entities.PositionTE, Active: true,
			Projections: map[entities.ScoringFormat]float64{entities.FormatStandard: 8},
		},
		{
			PlayerID: "te-a", Position: entities.PositionTE, Active: true,
			Projections: map[entities.ScoringFormat]float64{entities.FormatStandard: 8},
		},
	})

	uc := newPlayerUseCase(store)
	players, err := uc.ListByPosition(context.Background(), entities.PositionTE, entities.FormatStandard)
	if err != nil {
		t.Fatalf("list by position: %v", err)
	}
	if players[0].PlayerID != "te-a" || players[1].PlayerID != "te-b" {
		t.Fatalf("expected ID order on equal projections, got %s then %s", players[0].PlayerID, players[1].PlayerID)
	}
}

func TestListByPositionFlexPoolsSkillPositions(t *testing.T) {
	store := memory.NewStore([]entities.Player{
		{
			PlayerID: "rb-1", Position: entities.PositionRB, Active: true,
			Projections: map[entities.ScoringFormat]float64{entities.FormatPPR: 18.5},
		},
		{
			PlayerID: "wr-1", Position: entities.PositionWR, Active: true,
			Projections: map[entities.ScoringFormat]float64{entities.FormatPPR: 21.25},
		},
		{
			PlayerID: "te-1", Position: entities.PositionTE, Active: true,
			Projections: map[entities.ScoringFormat]float64{entities.FormatPPR: 12.75},
		},
		{
			PlayerID: "qb-1", Position: entities.PositionQB, Active: true,
			Projections: map[entities.ScoringFormat]float64{entities.FormatPPR: 24},
		},
	})

	uc := newPlayerUseCase(store)
	players, err := uc.ListByPosition(context.Background(), entities.PositionFlex, entities.FormatPPR)
	if err != nil {
		t.Fatalf("list flex pool: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected RB/WR/TE in the flex pool, got %d players", len(players))
	}
	want := []string{"wr-1", "rb-1", "te-1"}
	for i, id := range want {
		if players[i].PlayerID != id {
			t.Fatalf("expected %v, got %s at index %d", want, players[i].PlayerID, i)
		}
	}
}

func TestListByPositionValidatesInput(t *testing.T) {
	uc := newPlayerUseCase(memory.NewStore(nil))

	if _, err := uc.ListByPosition(context.Background(), "GOALIE", entities.FormatPPR); !errors.Is(err, domainerrors.ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
	if _, err := uc.ListByPosition(context.Background(), entities.PositionQB, "six-point-td"); !errors.Is(err, domainerrors.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestSnapshotKeysPlayersByID(t *testing.T) {
	store := memory.NewStore([]entities.Player{
		{PlayerID: "qb-1", Position: entities.PositionQB, Active: true},
		{PlayerID: "k-1", Position: entities.PositionK, Active: true},
	})

	uc := newPlayerUseCase(store)
	snapshot, err := uc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 players, got %d", len(snapshot))
	}
	if snapshot["k-1"].Position != entities.PositionK {
		t.Fatalf("expected kicker under its own key, got %+v", snapshot["k-1"])
	}
}

func TestGetPlayerUnknownID(t *testing.T) {
	uc := newPlayerUseCase(memory.NewStore(nil))
	if _, err := uc.GetPlayer(context.Background(), "nobody"); !errors.Is(err, domainerrors.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}
