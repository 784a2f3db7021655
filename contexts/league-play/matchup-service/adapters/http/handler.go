package httpadapter

import (
	"context"
	"log/slog"

	"gridiron/contexts/league-play/matchup-service/application/commands"
	"gridiron/contexts/league-play/matchup-service/application/queries"
	"gridiron/contexts/league-play/matchup-service/domain/entities"
	"gridiron/contexts/league-play/matchup-service/domain/lineup"
	httptransport "gridiron/contexts/league-play/matchup-service/transport/http"
)

type Handler struct {
	Matchups commands.MatchupUseCase
	Lineups  queries.LineupUseCase
	Logger   *slog.Logger
}

// GetOrCreateMatchupHandler resolves the caller's matchup with an opponent,
// creating it on first access.
func (h Handler) GetOrCreateMatchupHandler(
	ctx context.Context,
	userID string,
	req httptransport.CreateMatchupRequest,
) (httptransport.MatchupResponse, error) {
	matchup, err := h.Matchups.GetOrCreate(ctx, userID, req.OpponentID, entities.ScoringFormat(req.Format))
	if err != nil {
		return httptransport.MatchupResponse{}, err
	}
	return toMatchupResponse(matchup), nil
}

func (h Handler) EditCapacityHandler(
	ctx context.Context,
	userID string,
	matchupID string,
	req httptransport.EditCapacityRequest,
) (httptransport.MatchupResponse, error) {
	result, err := h.Matchups.EditCapacity(ctx, commands.EditCapacityCommand{
		MatchupID: matchupID,
		EditorID:  userID,
		Capacity:  capacityFromPayload(req.Capacity),
	})
	if err != nil {
		return httptransport.MatchupResponse{}, err
	}
	return toMatchupResponse(result.Matchup), nil
}

func (h Handler) ConfirmMatchupHandler(
	ctx context.Context,
	userID string,
	matchupID string,
) (httptransport.MatchupResponse, error) {
	result, err := h.Matchups.Confirm(ctx, matchupID, userID)
	if err != nil {
		return httptransport.MatchupResponse{}, err
	}
	return toMatchupResponse(result.Matchup), nil
}

func (h Handler) GetMatchupHandler(
	ctx context.Context,
	matchupID string,
) (httptransport.MatchupResponse, error) {
	matchup, err := h.Matchups.Matchups.GetMatchup(ctx, matchupID)
	if err != nil {
		return httptransport.MatchupResponse{}, err
	}
	return toMatchupResponse(matchup), nil
}

// GetLineupHandler derives the two-sided lineup on demand.
func (h Handler) GetLineupHandler(
	ctx context.Context,
	matchupID string,
) (httptransport.LineupResponse, error) {
	result, err := h.Lineups.ComputeLineup(ctx, matchupID)
	if err != nil {
		return httptransport.LineupResponse{}, err
	}
	return toLineupResponse(result), nil
}

func toMatchupResponse(matchup entities.Matchup) httptransport.MatchupResponse {
	return httptransport.MatchupResponse{
		MatchupID:         matchup.MatchupID,
		UserAID:           matchup.UserAID,
		UserBID:           matchup.UserBID,
		Format:            string(matchup.Format),
		Status:            string(matchup.Status),
		ConfirmedA:        matchup.ConfirmedA,
		ConfirmedB:        matchup.ConfirmedB,
		CapacityA:         capacityToPayload(matchup.CapacityA),
		CapacityB:         capacityToPayload(matchup.CapacityB),
		EffectiveCapacity: capacityToPayload(matchup.EffectiveCapacity()),
		FinalScoreA:       matchup.FinalScoreA,
		FinalScoreB:       matchup.FinalScoreB,
		WinnerID:          matchup.WinnerID,
	}
}

func toLineupResponse(result queries.LineupResult) httptransport.LineupResponse {
	return httptransport.LineupResponse{
		MatchupID: result.Matchup.MatchupID,
		Week:      result.Week,
		SideA:     toSlotResponses(result.Distribution.SideA),
		SideB:     toSlotResponses(result.Distribution.SideB),
		TotalA:    result.Distribution.TotalA,
		TotalB:    result.Distribution.TotalB,
		Burned:    result.Distribution.Burned,
	}
}

func toSlotResponses(slots []lineup.Slot) []httptransport.SlotResponse {
	out := make([]httptransport.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, httptransport.SlotResponse{
			Position:   string(slot.Position),
			PlayerID:   slot.PlayerID,
			OriginRank: slot.OriginRank,
			Projected:  slot.Projected,
			Live:       slot.Live,
		})
	}
	return out
}

func capacityFromPayload(p httptransport.CapacityPayload) entities.SlotCapacity {
	return entities.SlotCapacity{QB: p.QB, RB: p.RB, WR: p.WR, TE: p.TE, Flex: p.Flex, K: p.K, DST: p.DST}
}

func capacityToPayload(c entities.SlotCapacity) httptransport.CapacityPayload {
	return httptransport.CapacityPayload{QB: c.QB, RB: c.RB, WR: c.WR, TE: c.TE, Flex: c.Flex, K: c.K, DST: c.DST}
}
