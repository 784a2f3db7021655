package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "gridiron/contexts/league-play/matchup-service/application"
	"gridiron/contexts/league-play/matchup-service/application/queries"
	"gridiron/contexts/league-play/matchup-service/domain/entities"
	domainerrors "gridiron/contexts/league-play/matchup-service/domain/errors"
	"gridiron/contexts/league-play/matchup-service/ports"
)

type EditCapacityCommand struct {
	MatchupID string
	EditorID  string
	Capacity  entities.SlotCapacity
}

// EditResult reports a two-phase capacity edit: the tentative apply either
// stuck (Applied true) or was rolled back after the store write failed, in
// which case Matchup carries the untouched previous state.
type EditResult struct {
	Matchup entities.Matchup
	Applied bool
}

type ConfirmResult struct {
	Matchup   entities.Matchup
	Activated bool
}

type FinalizeResult struct {
	Matchup entities.Matchup
	ScoreA  float64
	ScoreB  float64
	Week    int
}

// MatchupUseCase owns the pending → active → final lifecycle: capacity
// negotiation, confirmation gating, and finalization.
type MatchupUseCase struct {
	Matchups ports.MatchupRepository
	Lineups  queries.LineupUseCase
	Outbox   ports.OutboxWriter
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// GetOrCreate returns the matchup for an unordered user pair and format,
// lazily creating it with default capacities on first access.
func (uc MatchupUseCase) GetOrCreate(
	ctx context.Context,
	userX string,
	userY string,
	format entities.ScoringFormat,
) (entities.Matchup, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !entities.IsValidFormat(format) {
		return entities.Matchup{}, domainerrors.ErrInvalidFormat
	}
	userA, userB := entities.NormalizePair(userX, userY)
	if userA == "" || userA == userB {
		return entities.Matchup{}, domainerrors.ErrSelfMatchup
	}

	matchup, err := uc.Matchups.GetMatchupByPair(ctx, userA, userB, format)
	if err == nil {
		return matchup, nil
	}
	if !errors.Is(err, domainerrors.ErrMatchupNotFound) {
		return entities.Matchup{}, err
	}

	matchupID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Matchup{}, err
	}
	now := uc.Clock.Now().UTC()
	matchup = entities.Matchup{
		MatchupID: matchupID,
		UserAID:   userA,
		UserBID:   userB,
		Format:    format,
		Status:    entities.StatusPending,
		CapacityA: entities.DefaultCapacity(),
		CapacityB: entities.DefaultCapacity(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.Matchups.SaveMatchup(ctx, matchup); err != nil {
		// A concurrent first access may have won the insert; fall back to the
		// stored record.
		if errors.Is(err, domainerrors.ErrMatchupKeyConflict) {
			return uc.Matchups.GetMatchupByPair(ctx, userA, userB, format)
		}
		return entities.Matchup{}, err
	}
	logger.Info("matchup created",
		"event", "matchup_created",
		"module", "league-play/matchup-service",
		"layer", "application",
		"matchup_id", matchup.MatchupID,
		"user_a", userA,
		"user_b", userB,
		"format", string(format),
	)
	return matchup, nil
}

// EditCapacity replaces the editor's own capacity map. The edit resets the
// editor's confirmation, and an active matchup reverts to pending: its agreed
// terms are void once re-opened. The other side's submitted values are never
// touched.
func (uc MatchupUseCase) EditCapacity(ctx context.Context, cmd EditCapacityCommand) (EditResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !cmd.Capacity.Valid() {
		return EditResult{}, domainerrors.ErrMalformedCapacity
	}

	matchup, err := uc.Matchups.GetMatchup(ctx, strings.TrimSpace(cmd.MatchupID))
	if err != nil {
		return EditResult{}, err
	}
	if matchup.Status == entities.StatusFinal {
		return EditResult{}, domainerrors.ErrMatchupFinal
	}
	side, ok := matchup.SideOf(cmd.EditorID)
	if !ok {
		return EditResult{}, domainerrors.ErrNotParticipant
	}

	previous := matchup
	switch side {
	case entities.SideA:
		matchup.CapacityA = cmd.Capacity
		matchup.ConfirmedA = false
	case entities.SideB:
		matchup.CapacityB = cmd.Capacity
		matchup.ConfirmedB = false
	}
	if matchup.Status == entities.StatusActive {
		matchup.Status = entities.StatusPending
	}
	matchup.UpdatedAt = uc.Clock.Now().UTC()

	if err := uc.Matchups.SaveMatchup(ctx, matchup); err != nil {
		logger.Error("capacity edit write failed, reverting",
			"event", "matchup_capacity_edit_reverted",
			"module", "league-play/matchup-service",
			"layer", "application",
			"matchup_id", matchup.MatchupID,
			"editor_id", strings.TrimSpace(cmd.EditorID),
			"error", err.Error(),
		)
		return EditResult{Matchup: previous, Applied: false}, err
	}
	logger.Info("matchup capacity edited",
		"event", "matchup_capacity_edited",
		"module", "league-play/matchup-service",
		"layer", "application",
		"matchup_id", matchup.MatchupID,
		"editor_side", string(side),
		"status", string(matchup.Status),
	)
	return EditResult{Matchup: matchup, Applied: true}, nil
}

// Confirm sets the caller's confirmation flag. When the other side already
// confirmed, the matchup activates in the same operation.
func (uc MatchupUseCase) Confirm(ctx context.Context, matchupID string, userID string) (ConfirmResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	matchup, err := uc.Matchups.GetMatchup(ctx, strings.TrimSpace(matchupID))
	if err != nil {
		return ConfirmResult{}, err
	}
	if matchup.Status == entities.StatusFinal {
		return ConfirmResult{}, domainerrors.ErrMatchupFinal
	}
	side, ok := matchup.SideOf(userID)
	if !ok {
		return ConfirmResult{}, domainerrors.ErrNotParticipant
	}

	switch side {
	case entities.SideA:
		matchup.ConfirmedA = true
	case entities.SideB:
		matchup.ConfirmedB = true
	}
	activated := false
	if matchup.ConfirmedA && matchup.ConfirmedB && matchup.Status == entities.StatusPending {
		matchup.Status = entities.StatusActive
		activated = true
	}
	now := uc.Clock.Now().UTC()
	matchup.UpdatedAt = now

	if err := uc.Matchups.SaveMatchup(ctx, matchup); err != nil {
		return ConfirmResult{}, err
	}
	if activated && uc.Outbox != nil {
		if err := appendOutboxEvent(ctx, uc.Outbox, uc.IDGen, EventMatchupActivated, matchup.MatchupID, now,
			MatchupActivatedPayload{
				MatchupID: matchup.MatchupID,
				UserAID:   matchup.UserAID,
				UserBID:   matchup.UserBID,
				Format:    string(matchup.Format),
			}); err != nil {
			logger.Error("matchup activation event append failed",
				"event", "matchup_activated_outbox_failed",
				"module", "league-play/matchup-service",
				"layer", "application",
				"matchup_id", matchup.MatchupID,
				"error", err.Error(),
			)
		}
	}
	logger.Info("matchup confirmation recorded",
		"event", "matchup_confirmed",
		"module", "league-play/matchup-service",
		"layer", "application",
		"matchup_id", matchup.MatchupID,
		"side", string(side),
		"activated", activated,
	)
	return ConfirmResult{Matchup: matchup, Activated: activated}, nil
}

// Finalize scores both sides at this instant, decides the winner by strict
// greater-than (equal totals tie with no winner), and moves the matchup to
// final. Only an active matchup finalizes, which makes a second trigger a
// no-op at the caller.
func (uc MatchupUseCase) Finalize(ctx context.Context, matchupID string) (FinalizeResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	matchup, err := uc.Matchups.GetMatchup(ctx, strings.TrimSpace(matchupID))
	if err != nil {
		return FinalizeResult{}, err
	}
	if matchup.Status != entities.StatusActive {
		return FinalizeResult{}, domainerrors.ErrMatchupNotActive
	}

	computed, err := uc.Lineups.ComputeFor(ctx, matchup)
	if err != nil {
		return FinalizeResult{}, err
	}

	matchup.FinalScoreA = computed.Distribution.TotalA
	matchup.FinalScoreB = computed.Distribution.TotalB
	matchup.WinnerID = ""
	if matchup.FinalScoreA > matchup.FinalScoreB {
		matchup.WinnerID = matchup.UserAID
	} else if matchup.FinalScoreB > matchup.FinalScoreA {
		matchup.WinnerID = matchup.UserBID
	}
	matchup.Status = entities.StatusFinal
	now := uc.Clock.Now().UTC()
	matchup.UpdatedAt = now

	if err := uc.Matchups.SaveMatchup(ctx, matchup); err != nil {
		return FinalizeResult{}, err
	}
	if uc.Outbox != nil {
		if err := appendOutboxEvent(ctx, uc.Outbox, uc.IDGen, EventMatchupFinalized, matchup.MatchupID, now,
			MatchupFinalizedPayload{
				MatchupID: matchup.MatchupID,
				UserAID:   matchup.UserAID,
				UserBID:   matchup.UserBID,
				ScoreA:    matchup.FinalScoreA,
				ScoreB:    matchup.FinalScoreB,
				WinnerID:  matchup.WinnerID,
				Week:      computed.Week,
			}); err != nil {
			logger.Error("matchup finalized event append failed",
				"event", "matchup_finalized_outbox_failed",
				"module", "league-play/matchup-service",
				"layer", "application",
				"matchup_id", matchup.MatchupID,
				"error", err.Error(),
			)
		}
	}
	logger.Info("matchup finalized",
		"event", "matchup_finalized",
		"module", "league-play/matchup-service",
		"layer", "application",
		"matchup_id", matchup.MatchupID,
		"score_a", matchup.FinalScoreA,
		"score_b", matchup.FinalScoreB,
		"winner_id", matchup.WinnerID,
	)
	return FinalizeResult{
		Matchup: matchup,
		ScoreA:  matchup.FinalScoreA,
		ScoreB:  matchup.FinalScoreB,
		Week:    computed.Week,
	}, nil
}
