package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "gridiron/contexts/league-play/ranking-service/application"
	"gridiron/contexts/league-play/ranking-service/domain/entities"
	domainerrors "gridiron/contexts/league-play/ranking-service/domain/errors"
	"gridiron/contexts/league-play/ranking-service/domain/ranking"
	"gridiron/contexts/league-play/ranking-service/ports"
)

// BoardKey identifies one user's board.
type BoardKey struct {
	UserID   string
	Position entities.Position
	Format   entities.ScoringFormat
}

func (k BoardKey) normalize() BoardKey {
	return BoardKey{
		UserID:   strings.TrimSpace(k.UserID),
		Position: entities.Position(strings.TrimSpace(string(k.Position))),
		Format:   entities.ScoringFormat(strings.TrimSpace(string(k.Format))),
	}
}

func (k BoardKey) validate() error {
	if k.UserID == "" {
		return domainerrors.ErrBoardNotFound
	}
	if !entities.IsValidPosition(k.Position) {
		return domainerrors.ErrInvalidPosition
	}
	if !entities.IsValidFormat(k.Format) {
		return domainerrors.ErrInvalidFormat
	}
	return nil
}

type ComparisonCommand struct {
	Key      BoardKey
	WinnerID string
	LoserID  string
}

type PromotionDuelCommand struct {
	Key      BoardKey
	ChosenID string
}

// SessionResult is the board state handed back after every transition,
// together with the next choice to put in front of the user. NextPair is the
// next bottom-up comparison; NextDuel is set instead while a promotion cycle
// is open.
type SessionResult struct {
	Board    entities.Board
	NextPair *ranking.Pair
	NextDuel *ranking.Pair
}

// SessionUseCase drives the comparison wizard. Every state transition upserts
// the board; the pure ordering rules live in domain/ranking.
type SessionUseCase struct {
	Boards ports.BoardRepository
	Pool   ports.PlayerPool
	Clock  ports.Clock
	Logger *slog.Logger
}

// StartSession loads the user's board, creating one seeded from the position
// pool in projection order when none exists yet.
func (uc SessionUseCase) StartSession(ctx context.Context, key BoardKey) (SessionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	key = key.normalize()
	if err := key.validate(); err != nil {
		return SessionResult{}, err
	}

	board, err := uc.Boards.GetBoard(ctx, key.UserID, key.Position, key.Format)
	if err == nil {
		return uc.result(board), nil
	}
	if !errors.Is(err, domainerrors.ErrBoardNotFound) {
		return SessionResult{}, err
	}

	pool, err := uc.Pool.PoolForPosition(ctx, key.Position, key.Format)
	if err != nil {
		logger.Error("ranking pool load failed",
			"event", "ranking_pool_load_failed",
			"module", "league-play/ranking-service",
			"layer", "application",
			"user_id", key.UserID,
			"position", string(key.Position),
			"error", err.Error(),
		)
		return SessionResult{}, err
	}
	if len(pool) == 0 {
		return SessionResult{}, domainerrors.ErrEmptyPool
	}

	entries := make([]entities.RankingEntry, len(pool))
	for i, player := range pool {
		entries[i] = entities.RankingEntry{PlayerID: player.PlayerID, Rank: i + 1}
	}
	board = entities.Board{
		UserID:    key.UserID,
		Position:  key.Position,
		Format:    key.Format,
		Entries:   entries,
		UpdatedAt: uc.Clock.Now().UTC(),
	}
	if err := uc.Boards.SaveBoard(ctx, board); err != nil {
		return SessionResult{}, err
	}
	logger.Info("ranking board created",
		"event", "ranking_board_created",
		"module", "league-play/ranking-service",
		"layer", "application",
		"user_id", key.UserID,
		"position", string(key.Position),
		"format", string(key.Format),
		"pool_size", len(entries),
	)
	return uc.result(board), nil
}

// SubmitComparison resolves one user choice. A consistent choice marks both
// entries compared; an upset opens a promotion cycle that must be advanced
// through SubmitPromotionDuel before the next pair is offered.
func (uc SessionUseCase) SubmitComparison(ctx context.Context, cmd ComparisonCommand) (SessionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	key := cmd.Key.normalize()
	if err := key.validate(); err != nil {
		return SessionResult{}, err
	}

	board, err := uc.Boards.GetBoard(ctx, key.UserID, key.Position, key.Format)
	if err != nil {
		return SessionResult{}, err
	}
	if board.Promotion != nil {
		return SessionResult{}, domainerrors.ErrPromotionMismatch
	}

	resolution, err := ranking.ResolveComparison(
		board.Entries,
		strings.TrimSpace(cmd.WinnerID),
		strings.TrimSpace(cmd.LoserID),
	)
	if err != nil {
		logger.Error("ranking comparison rejected",
			"event", "ranking_comparison_rejected",
			"module", "league-play/ranking-service",
			"layer", "application",
			"user_id", key.UserID,
			"winner_id", strings.TrimSpace(cmd.WinnerID),
			"loser_id", strings.TrimSpace(cmd.LoserID),
			"error", err.Error(),
		)
		return SessionResult{}, err
	}

	board.Entries = resolution.Entries
	board.Promotion = resolution.Promotion
	board.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Boards.SaveBoard(ctx, board); err != nil {
		return SessionResult{}, err
	}
	logger.Info("ranking comparison resolved",
		"event", "ranking_comparison_resolved",
		"module", "league-play/ranking-service",
		"layer", "application",
		"user_id", key.UserID,
		"position", string(key.Position),
		"promotion_opened", board.Promotion != nil,
	)
	return uc.result(board), nil
}

// SubmitPromotionDuel advances the open promotion cycle by one duel.
func (uc SessionUseCase) SubmitPromotionDuel(ctx context.Context, cmd PromotionDuelCommand) (SessionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	key := cmd.Key.normalize()
	if err := key.validate(); err != nil {
		return SessionResult{}, err
	}

	board, err := uc.Boards.GetBoard(ctx, key.UserID, key.Position, key.Format)
	if err != nil {
		return SessionResult{}, err
	}
	if board.Promotion == nil {
		return SessionResult{}, domainerrors.ErrNoOpenPromotion
	}

	step, err := ranking.AdvancePromotion(board.Entries, *board.Promotion, strings.TrimSpace(cmd.ChosenID))
	if err != nil {
		return SessionResult{}, err
	}

	board.Entries = step.Entries
	if step.Continue {
		next := step.Next
		board.Promotion = &next
	} else {
		board.Promotion = nil
	}
	board.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Boards.SaveBoard(ctx, board); err != nil {
		return SessionResult{}, err
	}
	logger.Info("ranking promotion duel advanced",
		"event", "ranking_promotion_advanced",
		"module", "league-play/ranking-service",
		"layer", "application",
		"user_id", key.UserID,
		"position", string(key.Position),
		"settled", !step.Continue,
	)
	return uc.result(board), nil
}

// ResetBoard clears compared flags and any open cycle. Rank order is kept;
// a reset restarts the wizard against the current order, not the projection
// default.
func (uc SessionUseCase) ResetBoard(ctx context.Context, key BoardKey) (SessionResult, error) {
	key = key.normalize()
	if err := key.validate(); err != nil {
		return SessionResult{}, err
	}

	board, err := uc.Boards.GetBoard(ctx, key.UserID, key.Position, key.Format)
	if err != nil {
		return SessionResult{}, err
	}
	board.Entries = ranking.Reset(board.Entries)
	board.Promotion = nil
	board.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Boards.SaveBoard(ctx, board); err != nil {
		return SessionResult{}, err
	}
	return uc.result(board), nil
}

func (uc SessionUseCase) result(board entities.Board) SessionResult {
	result := SessionResult{Board: board}
	if board.Promotion != nil {
		if incumbentID, ok := ranking.IncumbentForCycle(board.Entries, board.Promotion.CycleIndex); ok {
			result.NextDuel = &ranking.Pair{
				ChallengerID: board.Promotion.PromotedID,
				IncumbentID:  incumbentID,
			}
		}
		return result
	}
	if pair, ok := ranking.NextComparisonPair(board.Entries); ok {
		result.NextPair = &pair
	}
	return result
}
