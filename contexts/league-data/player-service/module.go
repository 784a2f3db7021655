package playerservice

import (
	"log/slog"

	httpadapter "gridiron/contexts/league-data/player-service/adapters/http"
	"gridiron/contexts/league-data/player-service/adapters/memory"
	"gridiron/contexts/league-data/player-service/application/commands"
	"gridiron/contexts/league-data/player-service/application/queries"
	"gridiron/contexts/league-data/player-service/domain/entities"
	"gridiron/contexts/league-data/player-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Queries queries.PlayerUseCase
	Sync    commands.SyncUseCase
	Store   *memory.Store
}

type Dependencies struct {
	Players     ports.PlayerRepository
	Weeks       ports.WeekSource
	Schedule    ports.ScheduleSource
	Stats       ports.StatFeed
	Projections ports.ProjectionFeed
	Clock       ports.Clock
	BatchSize   int
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	playerUseCase := queries.PlayerUseCase{
		Players: deps.Players,
		Weeks:   deps.Weeks,
	}
	syncUseCase := commands.SyncUseCase{
		Players:     deps.Players,
		Weeks:       deps.Weeks,
		Stats:       deps.Stats,
		Projections: deps.Projections,
		Clock:       deps.Clock,
		BatchSize:   deps.BatchSize,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Players: playerUseCase,
			Sync:    syncUseCase,
			Logger:  deps.Logger,
		},
		Queries: playerUseCase,
		Sync:    syncUseCase,
	}
}

func NewInMemoryModule(seed []entities.Player, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Players:     store,
		Weeks:       store,
		Schedule:    store,
		Stats:       store,
		Projections: store,
		Clock:       store,
		BatchSize:   50,
		Logger:      logger,
	})
	module.Store = store
	return module
}
