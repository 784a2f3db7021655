package rankingservice

import (
	"log/slog"

	httpadapter "gridiron/contexts/league-play/ranking-service/adapters/http"
	"gridiron/contexts/league-play/ranking-service/adapters/memory"
	"gridiron/contexts/league-play/ranking-service/application/commands"
	"gridiron/contexts/league-play/ranking-service/application/queries"
	"gridiron/contexts/league-play/ranking-service/domain/entities"
	"gridiron/contexts/league-play/ranking-service/ports"
)

type Module struct {
	Handler  httpadapter.Handler
	Sessions commands.SessionUseCase
	Boards   queries.BoardUseCase
	Store    *memory.Store
}

type Dependencies struct {
	Boards ports.BoardRepository
	Pool   ports.PlayerPool
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	sessionUseCase := commands.SessionUseCase{
		Boards: deps.Boards,
		Pool:   deps.Pool,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	boardUseCase := queries.BoardUseCase{
		Boards: deps.Boards,
	}
	return Module{
		Handler: httpadapter.Handler{
			Sessions: sessionUseCase,
			Boards:   boardUseCase,
			Logger:   deps.Logger,
		},
		Sessions: sessionUseCase,
		Boards:   boardUseCase,
	}
}

func NewInMemoryModule(seed []entities.Board, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Boards: store,
		Pool:   store,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
