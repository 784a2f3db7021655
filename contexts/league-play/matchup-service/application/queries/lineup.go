package queries

import (
	"context"
	"strings"

	"gridiron/contexts/league-play/matchup-service/domain/entities"
	"gridiron/contexts/league-play/matchup-service/domain/lineup"
	"gridiron/contexts/league-play/matchup-service/ports"
)

// LineupResult is one computed two-sided lineup. Lineups are derived from
// their inputs on every call and never persisted.
type LineupResult struct {
	Matchup      entities.Matchup
	Distribution lineup.Result
	Week         int
}

type LineupUseCase struct {
	Matchups ports.MatchupRepository
	Rankings ports.RankingSource
	Players  ports.PlayerSource
}

// ComputeLineup merges both users' ranking boards under the matchup's
// effective capacity and scores the slots from the current snapshot.
func (uc LineupUseCase) ComputeLineup(ctx context.Context, matchupID string) (LineupResult, error) {
	matchup, err := uc.Matchups.GetMatchup(ctx, strings.TrimSpace(matchupID))
	if err != nil {
		return LineupResult{}, err
	}
	return uc.ComputeFor(ctx, matchup)
}

// ComputeFor distributes a lineup for an already-loaded matchup. Finalization
// uses this to score the matchup at the instant of the transition.
func (uc LineupUseCase) ComputeFor(ctx context.Context, matchup entities.Matchup) (LineupResult, error) {
	order := entities.DistributionOrder()

	rankedA := make(map[entities.Position][]string, len(order))
	rankedB := make(map[entities.Position][]string, len(order))
	for _, position := range order {
		idsA, err := uc.Rankings.RankedIDs(ctx, matchup.UserAID, position, matchup.Format)
		if err != nil {
			return LineupResult{}, err
		}
		idsB, err := uc.Rankings.RankedIDs(ctx, matchup.UserBID, position, matchup.Format)
		if err != nil {
			return LineupResult{}, err
		}
		rankedA[position] = idsA
		rankedB[position] = idsB
	}

	snapshot, err := uc.Players.Snapshot(ctx)
	if err != nil {
		return LineupResult{}, err
	}
	week, err := uc.Players.CurrentWeek(ctx)
	if err != nil {
		return LineupResult{}, err
	}

	distribution := lineup.Distribute(
		order,
		rankedA,
		rankedB,
		matchup.EffectiveCapacity(),
		snapshot,
		matchup.Format,
		week,
	)
	return LineupResult{
		Matchup:      matchup,
		Distribution: distribution,
		Week:         week,
	}, nil
}
