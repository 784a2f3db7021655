package matchupservice

import (
	"log/slog"

	httpadapter "gridiron/contexts/league-play/matchup-service/adapters/http"
	"gridiron/contexts/league-play/matchup-service/adapters/memory"
	"gridiron/contexts/league-play/matchup-service/application/commands"
	"gridiron/contexts/league-play/matchup-service/application/queries"
	"gridiron/contexts/league-play/matchup-service/application/workers"
	"gridiron/contexts/league-play/matchup-service/domain/entities"
	"gridiron/contexts/league-play/matchup-service/ports"
)

type Module struct {
	Handler  httpadapter.Handler
	Matchups commands.MatchupUseCase
	Lineups  queries.LineupUseCase
	Poller   workers.LiveScorePoller
	Relay    workers.OutboxRelay
	Store    *memory.Store
}

type Dependencies struct {
	Matchups  ports.MatchupRepository
	Rankings  ports.RankingSource
	Players   ports.PlayerSource
	Schedule  ports.ScheduleSource
	Refresher ports.StatRefresher
	Outbox    ports.OutboxWriter
	OutboxSrc ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	lineupUseCase := queries.LineupUseCase{
		Matchups: deps.Matchups,
		Rankings: deps.Rankings,
		Players:  deps.Players,
	}
	matchupUseCase := commands.MatchupUseCase{
		Matchups: deps.Matchups,
		Lineups:  lineupUseCase,
		Outbox:   deps.Outbox,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	poller := workers.LiveScorePoller{
		Matchups:  deps.Matchups,
		Schedule:  deps.Schedule,
		Refresher: deps.Refresher,
		Finalizer: matchupUseCase,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	relay := workers.OutboxRelay{
		Outbox:    deps.OutboxSrc,
		Publisher: deps.Publisher,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Matchups: matchupUseCase,
			Lineups:  lineupUseCase,
			Logger:   deps.Logger,
		},
		Matchups: matchupUseCase,
		Lineups:  lineupUseCase,
		Poller:   poller,
		Relay:    relay,
	}
}

func NewInMemoryModule(seed []entities.Matchup, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Matchups:  store,
		Rankings:  store,
		Players:   store,
		Schedule:  store,
		Refresher: store,
		Outbox:    store,
		OutboxSrc: store,
		Clock:     store,
		IDGen:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
