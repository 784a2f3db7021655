package httpadapter

import (
	"context"
	"log/slog"
	"sort"

	"gridiron/contexts/league-play/ranking-service/application/commands"
	"gridiron/contexts/league-play/ranking-service/application/queries"
	"gridiron/contexts/league-play/ranking-service/domain/entities"
	"gridiron/contexts/league-play/ranking-service/domain/ranking"
	httptransport "gridiron/contexts/league-play/ranking-service/transport/http"
)

type Handler struct {
	Sessions commands.SessionUseCase
	Boards   queries.BoardUseCase
	Logger   *slog.Logger
}

func (h Handler) StartSessionHandler(
	ctx context.Context,
	userID string,
	position string,
	format string,
) (httptransport.BoardResponse, error) {
	result, err := h.Sessions.StartSession(ctx, commands.BoardKey{
		UserID:   userID,
		Position: entities.Position(position),
		Format:   entities.ScoringFormat(format),
	})
	if err != nil {
		return httptransport.BoardResponse{}, err
	}
	return toBoardResponse(result), nil
}

func (h Handler) SubmitComparisonHandler(
	ctx context.Context,
	userID string,
	position string,
	format string,
	req httptransport.ComparisonRequest,
) (httptransport.BoardResponse, error) {
	result, err := h.Sessions.SubmitComparison(ctx, commands.ComparisonCommand{
		Key: commands.BoardKey{
			UserID:   userID,
			Position: entities.Position(position),
			Format:   entities.ScoringFormat(format),
		},
		WinnerID: req.WinnerID,
		LoserID:  req.LoserID,
	})
	if err != nil {
		return httptransport.BoardResponse{}, err
	}
	return toBoardResponse(result), nil
}

func (h Handler) SubmitPromotionDuelHandler(
	ctx context.Context,
	userID string,
	position string,
	format string,
	req httptransport.PromotionDuelRequest,
) (httptransport.BoardResponse, error) {
	result, err := h.Sessions.SubmitPromotionDuel(ctx, commands.PromotionDuelCommand{
		Key: commands.BoardKey{
			UserID:   userID,
			Position: entities.Position(position),
			Format:   entities.ScoringFormat(format),
		},
		ChosenID: req.ChosenID,
	})
	if err != nil {
		return httptransport.BoardResponse{}, err
	}
	return toBoardResponse(result), nil
}

func (h Handler) ResetBoardHandler(
	ctx context.Context,
	userID string,
	position string,
	format string,
) (httptransport.BoardResponse, error) {
	result, err := h.Sessions.ResetBoard(ctx, commands.BoardKey{
		UserID:   userID,
		Position: entities.Position(position),
		Format:   entities.ScoringFormat(format),
	})
	if err != nil {
		return httptransport.BoardResponse{}, err
	}
	return toBoardResponse(result), nil
}

func (h Handler) GetBoardHandler(
	ctx context.Context,
	userID string,
	position string,
	format string,
) (httptransport.BoardResponse, error) {
	board, err := h.Boards.GetBoard(ctx, userID, entities.Position(position), entities.ScoringFormat(format))
	if err != nil {
		return httptransport.BoardResponse{}, err
	}
	pair, err := h.Boards.NextPair(ctx, userID, entities.Position(position), entities.ScoringFormat(format))
	if err != nil {
		return httptransport.BoardResponse{}, err
	}
	result := commands.SessionResult{Board: board}
	if pair != nil {
		if board.Promotion != nil {
			result.NextDuel = pair
		} else {
			result.NextPair = pair
		}
	}
	return toBoardResponse(result), nil
}

func toBoardResponse(result commands.SessionResult) httptransport.BoardResponse {
	entries := make([]httptransport.EntryResponse, 0, len(result.Board.Entries))
	for _, entry := range result.Board.Entries {
		entries = append(entries, httptransport.EntryResponse{
			PlayerID: entry.PlayerID,
			Rank:     entry.Rank,
			Compared: entry.Compared,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
	return httptransport.BoardResponse{
		UserID:   result.Board.UserID,
		Position: string(result.Board.Position),
		Format:   string(result.Board.Format),
		Phase:    string(result.Board.Phase()),
		Entries:  entries,
		NextPair: toPairResponse(result.NextPair),
		NextDuel: toPairResponse(result.NextDuel),
	}
}

func toPairResponse(pair *ranking.Pair) *httptransport.PairResponse {
	if pair == nil {
		return nil
	}
	return &httptransport.PairResponse{
		ChallengerID: pair.ChallengerID,
		IncumbentID:  pair.IncumbentID,
	}
}
