package queries

import (
	"context"
	"errors"
	"strings"

	"gridiron/contexts/league-play/ranking-service/domain/entities"
	domainerrors "gridiron/contexts/league-play/ranking-service/domain/errors"
	"gridiron/contexts/league-play/ranking-service/domain/ranking"
	"gridiron/contexts/league-play/ranking-service/ports"
)

type BoardUseCase struct {
	Boards ports.BoardRepository
}

func (uc BoardUseCase) GetBoard(
	ctx context.Context,
	userID string,
	position entities.Position,
	format entities.ScoringFormat,
) (entities.Board, error) {
	return uc.Boards.GetBoard(ctx, strings.TrimSpace(userID), position, format)
}

// OrderedIDs returns a user's ranked player-ID list for a position, the shape
// the lineup distributor consumes. A missing board yields an empty list, not
// an error: an unranked position simply has no picks.
func (uc BoardUseCase) OrderedIDs(
	ctx context.Context,
	userID string,
	position entities.Position,
	format entities.ScoringFormat,
) ([]string, error) {
	board, err := uc.Boards.GetBoard(ctx, strings.TrimSpace(userID), position, format)
	if err != nil {
		if errors.Is(err, domainerrors.ErrBoardNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return board.OrderedIDs(), nil
}

func (uc BoardUseCase) NextPair(
	ctx context.Context,
	userID string,
	position entities.Position,
	format entities.ScoringFormat,
) (*ranking.Pair, error) {
	board, err := uc.Boards.GetBoard(ctx, strings.TrimSpace(userID), position, format)
	if err != nil {
		return nil, err
	}
	if board.Promotion != nil {
		if incumbentID, ok := ranking.IncumbentForCycle(board.Entries, board.Promotion.CycleIndex); ok {
			return &ranking.Pair{
				ChallengerID: board.Promotion.PromotedID,
				IncumbentID:  incumbentID,
			}, nil
		}
		return nil, nil
	}
	if pair, ok := ranking.NextComparisonPair(board.Entries); ok {
		return &pair, nil
	}
	return nil, nil
}
