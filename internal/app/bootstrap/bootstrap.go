package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	playerservice "gridiron/contexts/league-data/player-service"
	playermemory "gridiron/contexts/league-data/player-service/adapters/memory"
	playerpostgres "gridiron/contexts/league-data/player-service/adapters/postgres"
	matchupservice "gridiron/contexts/league-play/matchup-service"
	matchuppostgres "gridiron/contexts/league-play/matchup-service/adapters/postgres"
	matchupworkers "gridiron/contexts/league-play/matchup-service/application/workers"
	rankingservice "gridiron/contexts/league-play/ranking-service"
	rankingpostgres "gridiron/contexts/league-play/ranking-service/adapters/postgres"
	"gridiron/internal/platform/config"
	"gridiron/internal/platform/db"
	"gridiron/internal/platform/httpserver"
	"gridiron/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	poller       matchupworkers.LiveScorePoller
	outboxRelay  matchupworkers.OutboxRelay
	players      playerservice.Module
	pollInterval time.Duration
	runPoller    bool
	runRelay     bool
	runStatSync  bool
	logger       *slog.Logger
}

type modules struct {
	rankings rankingservice.Module
	matchups matchupservice.Module
	players  playerservice.Module
}

func buildModules(cfg config.Config, pg *db.Postgres, bus *messaging.Kafka, logger *slog.Logger) modules {
	// League feed adapters are still in-process stand-ins; the memory store
	// serves the feed ports until the external integrations land.
	feeds := playermemory.NewStore(nil)
	playerRepo := playerpostgres.NewRepository(pg.DB, logger)
	players := playerservice.NewModule(playerservice.Dependencies{
		Players:     playerRepo,
		Weeks:       feeds,
		Schedule:    feeds,
		Stats:       feeds,
		Projections: feeds,
		Clock:       playerpostgres.SystemClock{},
		BatchSize:   cfg.SyncBatchSize,
		Logger:      logger,
	})

	rankingRepo := rankingpostgres.NewRepository(pg.DB, logger)
	rankings := rankingservice.NewModule(rankingservice.Dependencies{
		Boards: rankingRepo,
		Pool:   playerPool{players: players.Queries},
		Clock:  rankingpostgres.SystemClock{},
		Logger: logger,
	})

	matchupRepo := matchuppostgres.NewRepository(pg.DB, logger)
	matchups := matchupservice.NewModule(matchupservice.Dependencies{
		Matchups:  matchupRepo,
		Rankings:  rankingSource{boards: rankings.Boards},
		Players:   playerSource{players: players.Queries},
		Schedule:  scheduleSource{weeks: feeds, schedule: feeds},
		Refresher: statRefresher{sync: players.Sync},
		Outbox:    matchupRepo,
		OutboxSrc: matchupRepo,
		Publisher: bus,
		Clock:     matchuppostgres.SystemClock{},
		IDGen:     matchuppostgres.UUIDGenerator{},
		Logger:    logger,
	})

	return modules{
		rankings: rankings,
		matchups: matchups,
		players:  players,
	}
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	mods := buildModules(cfg, pg, bus, logger)
	server := httpserver.New(mods.rankings, mods.matchups, mods.players, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	mods := buildModules(cfg, pg, bus, logger)
	return &WorkerApp{
		postgres:     pg,
		poller:       mods.matchups.Poller,
		outboxRelay:  mods.matchups.Relay,
		players:      mods.players,
		pollInterval: cfg.PollInterval,
		runPoller:    cfg.EnableLiveScorePoller,
		runRelay:     cfg.EnableOutboxRelay,
		runStatSync:  cfg.EnableStatSync,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"live_score_poller", w.runPoller,
		"outbox_relay", w.runRelay,
		"stat_sync", w.runStatSync,
	)

	for {
		if w.runStatSync {
			if _, err := w.players.Sync.SyncProjections(ctx); err != nil {
				return err
			}
		}
		if w.runPoller {
			if err := w.poller.RunOnce(ctx); err != nil {
				return err
			}
		}
		if w.runRelay {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
