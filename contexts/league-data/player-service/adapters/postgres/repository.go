package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gridiron/contexts/league-data/player-service/domain/entities"
	domainerrors "gridiron/contexts/league-data/player-service/domain/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) SavePlayer(ctx context.Context, player entities.Player) error {
	row, err := playerModelFromEntity(player)
	if err != nil {
		return r.logError("player_repo_encode_failed", err, "player_id", strings.TrimSpace(player.PlayerID))
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"position":    row.Position,
			"first_name":  row.FirstName,
			"last_name":   row.LastName,
			"team":        row.Team,
			"active":      row.Active,
			"projections": row.Projections,
			"week_stats":  row.WeekStats,
			"stats_week":  row.StatsWeek,
			"updated_at":  row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return r.logError("player_repo_save_failed", create.Error, "player_id", strings.TrimSpace(player.PlayerID))
	}
	return nil
}

// SavePlayers writes one sync chunk inside a single transaction so a chunk is
// either fully persisted or not counted at all.
func (r *Repository) SavePlayers(ctx context.Context, players []entities.Player) error {
	if len(players) == 0 {
		return domainerrors.ErrEmptyBatch
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, player := range players {
			row, err := playerModelFromEntity(player)
			if err != nil {
				return r.logError("player_repo_encode_failed", err, "player_id", strings.TrimSpace(player.PlayerID))
			}
			create := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"position":    row.Position,
					"first_name":  row.FirstName,
					"last_name":   row.LastName,
					"team":        row.Team,
					"active":      row.Active,
					"projections": row.Projections,
					"week_stats":  row.WeekStats,
					"stats_week":  row.StatsWeek,
					"updated_at":  row.UpdatedAt,
				}),
			}).Create(&row)
			if create.Error != nil {
				return r.logError("player_repo_batch_save_failed", create.Error, "player_id", strings.TrimSpace(player.PlayerID))
			}
		}
		return nil
	})
}

func (r *Repository) GetPlayer(ctx context.Context, playerID string) (entities.Player, error) {
	var row playerModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(playerID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Player{}, domainerrors.ErrPlayerNotFound
		}
		return entities.Player{}, r.logError("player_repo_get_failed", err, "player_id", strings.TrimSpace(playerID))
	}
	return row.toEntity()
}

func (r *Repository) ListByPosition(ctx context.Context, position entities.Position) ([]entities.Player, error) {
	var rows []playerModel
	err := r.db.WithContext(ctx).
		Where("position = ?", string(position)).
		Order("id asc").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("player_repo_list_position_failed", err, "position", string(position))
	}
	return toPlayerEntities(rows)
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.Player, error) {
	var rows []playerModel
	err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("player_repo_list_failed", err)
	}
	return toPlayerEntities(rows)
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "league-data/player-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("player repository operation failed", fields...)
	return err
}

type playerModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Position    string    `gorm:"column:position"`
	FirstName   string    `gorm:"column:first_name"`
	LastName    string    `gorm:"column:last_name"`
	Team        string    `gorm:"column:team"`
	Active      bool      `gorm:"column:active"`
	Projections []byte    `gorm:"column:projections;type:jsonb"`
	WeekStats   []byte    `gorm:"column:week_stats;type:jsonb"`
	StatsWeek   int       `gorm:"column:stats_week"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (playerModel) TableName() string {
	return "players"
}

func playerModelFromEntity(player entities.Player) (playerModel, error) {
	projections, err := json.Marshal(player.Projections)
	if err != nil {
		return playerModel{}, err
	}
	weekStats, err := json.Marshal(player.WeekStats)
	if err != nil {
		return playerModel{}, err
	}
	return playerModel{
		ID:          strings.TrimSpace(player.PlayerID),
		Position:    string(player.Position),
		FirstName:   player.FirstName,
		LastName:    player.LastName,
		Team:        player.Team,
		Active:      player.Active,
		Projections: projections,
		WeekStats:   weekStats,
		StatsWeek:   player.StatsWeek,
		UpdatedAt:   player.UpdatedAt,
	}, nil
}

func (m playerModel) toEntity() (entities.Player, error) {
	player := entities.Player{
		PlayerID:  m.ID,
		Position:  entities.Position(m.Position),
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Team:      m.Team,
		Active:    m.Active,
		StatsWeek: m.StatsWeek,
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Projections) > 0 {
		if err := json.Unmarshal(m.Projections, &player.Projections); err != nil {
			return entities.Player{}, err
		}
	}
	if len(m.WeekStats) > 0 {
		if err := json.Unmarshal(m.WeekStats, &player.WeekStats); err != nil {
			return entities.Player{}, err
		}
	}
	return player, nil
}

func toPlayerEntities(rows []playerModel) ([]entities.Player, error) {
	players := make([]entities.Player, 0, len(rows))
	for _, row := range rows {
		player, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

// SystemClock satisfies ports.Clock for production wiring.

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
