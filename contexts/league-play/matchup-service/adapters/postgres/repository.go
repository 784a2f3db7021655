package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gridiron/contexts/league-play/matchup-service/domain/entities"
	domainerrors "gridiron/contexts/league-play/matchup-service/domain/errors"
	"gridiron/contexts/league-play/matchup-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *Repository) SaveMatchup(ctx context.Context, matchup entities.Matchup) error {
	row, err := matchupModelFromEntity(matchup)
	if err != nil {
		return r.logError("matchup_repo_encode_failed", err,
			"matchup_id", strings.TrimSpace(matchup.MatchupID),
		)
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "matchup_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"status":        row.Status,
			"confirmed_a":   row.ConfirmedA,
			"confirmed_b":   row.ConfirmedB,
			"capacity_a":    row.CapacityA,
			"capacity_b":    row.CapacityB,
			"final_score_a": row.FinalScoreA,
			"final_score_b": row.FinalScoreB,
			"winner_id":     row.WinnerID,
			"updated_at":    row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		// The (user_a_id, user_b_id, format) unique index trips when two
		// first accesses race on the same pair.
		if isUniqueViolation(create.Error) {
			return domainerrors.ErrMatchupKeyConflict
		}
		return r.logError("matchup_repo_save_failed", create.Error,
			"matchup_id", strings.TrimSpace(matchup.MatchupID),
		)
	}
	return nil
}

func (r *Repository) GetMatchup(ctx context.Context, matchupID string) (entities.Matchup, error) {
	var row matchupModel
	err := r.db.WithContext(ctx).
		Where("matchup_id = ?", strings.TrimSpace(matchupID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Matchup{}, domainerrors.ErrMatchupNotFound
		}
		return entities.Matchup{}, r.logError("matchup_repo_get_failed", err,
			"matchup_id", strings.TrimSpace(matchupID),
		)
	}
	return row.toEntity()
}

func (r *Repository) GetMatchupByPair(
	ctx context.Context,
	userAID string,
	userBID string,
	format entities.ScoringFormat,
) (entities.Matchup, error) {
	var row matchupModel
	err := r.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ? AND format = ?",
			strings.TrimSpace(userAID), strings.TrimSpace(userBID), string(format)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Matchup{}, domainerrors.ErrMatchupNotFound
		}
		return entities.Matchup{}, r.logError("matchup_repo_get_by_pair_failed", err,
			"user_a", strings.TrimSpace(userAID),
			"user_b", strings.TrimSpace(userBID),
		)
	}
	return row.toEntity()
}

func (r *Repository) ListActiveMatchups(ctx context.Context) ([]entities.Matchup, error) {
	var rows []matchupModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.StatusActive)).
		Order("created_at asc").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("matchup_repo_list_active_failed", err)
	}
	items := make([]entities.Matchup, 0, len(rows))
	for _, row := range rows {
		matchup, err := row.toEntity()
		if err != nil {
			return nil, r.logError("matchup_repo_decode_failed", err,
				"matchup_id", row.MatchupID,
			)
		}
		items = append(items, matchup)
	}
	return items, nil
}

func (r *Repository) AppendOutbox(ctx context.Context, message ports.OutboxMessage) error {
	row := outboxModel{
		OutboxID:     strings.TrimSpace(message.OutboxID),
		EventType:    strings.TrimSpace(message.EventType),
		PartitionKey: strings.TrimSpace(message.PartitionKey),
		Payload:      message.Payload,
		CreatedAt:    message.CreatedAt.UTC(),
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outbox_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("matchup_outbox_append_failed", create.Error,
			"outbox_id", row.OutboxID,
		)
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at asc").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("matchup_outbox_list_failed", err)
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      row.Payload,
			CreatedAt:    row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	update := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Update("published_at", publishedAt.UTC())
	if update.Error != nil {
		return r.logError("matchup_outbox_mark_failed", update.Error,
			"outbox_id", strings.TrimSpace(outboxID),
		)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "league-play/matchup-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("matchup repository operation failed", fields...)
	return err
}

type matchupModel struct {
	MatchupID   string    `gorm:"column:matchup_id;primaryKey"`
	UserAID     string    `gorm:"column:user_a_id;uniqueIndex:idx_matchup_pair"`
	UserBID     string    `gorm:"column:user_b_id;uniqueIndex:idx_matchup_pair"`
	Format      string    `gorm:"column:format;uniqueIndex:idx_matchup_pair"`
	Status      string    `gorm:"column:status"`
	ConfirmedA  bool      `gorm:"column:confirmed_a"`
	ConfirmedB  bool      `gorm:"column:confirmed_b"`
	CapacityA   []byte    `gorm:"column:capacity_a;type:jsonb"`
	CapacityB   []byte    `gorm:"column:capacity_b;type:jsonb"`
	FinalScoreA float64   `gorm:"column:final_score_a"`
	FinalScoreB float64   `gorm:"column:final_score_b"`
	WinnerID    string    `gorm:"column:winner_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (matchupModel) TableName() string {
	return "matchups"
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload;type:jsonb"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "matchup_outbox"
}

type capacityRecord struct {
	QB   int `json:"qb"`
	RB   int `json:"rb"`
	WR   int `json:"wr"`
	TE   int `json:"te"`
	Flex int `json:"flex"`
	K    int `json:"k"`
	DST  int `json:"dst"`
}

func capacityRecordFrom(c entities.SlotCapacity) capacityRecord {
	return capacityRecord{QB: c.QB, RB: c.RB, WR: c.WR, TE: c.TE, Flex: c.Flex, K: c.K, DST: c.DST}
}

func (r capacityRecord) toEntity() entities.SlotCapacity {
	return entities.SlotCapacity{QB: r.QB, RB: r.RB, WR: r.WR, TE: r.TE, Flex: r.Flex, K: r.K, DST: r.DST}
}

func matchupModelFromEntity(matchup entities.Matchup) (matchupModel, error) {
	capacityA, err := json.Marshal(capacityRecordFrom(matchup.CapacityA))
	if err != nil {
		return matchupModel{}, err
	}
	capacityB, err := json.Marshal(capacityRecordFrom(matchup.CapacityB))
	if err != nil {
		return matchupModel{}, err
	}
	return matchupModel{
		MatchupID:   strings.TrimSpace(matchup.MatchupID),
		UserAID:     strings.TrimSpace(matchup.UserAID),
		UserBID:     strings.TrimSpace(matchup.UserBID),
		Format:      string(matchup.Format),
		Status:      string(matchup.Status),
		ConfirmedA:  matchup.ConfirmedA,
		ConfirmedB:  matchup.ConfirmedB,
		CapacityA:   capacityA,
		CapacityB:   capacityB,
		FinalScoreA: matchup.FinalScoreA,
		FinalScoreB: matchup.FinalScoreB,
		WinnerID:    strings.TrimSpace(matchup.WinnerID),
		CreatedAt:   matchup.CreatedAt,
		UpdatedAt:   matchup.UpdatedAt,
	}, nil
}

func (m matchupModel) toEntity() (entities.Matchup, error) {
	matchup := entities.Matchup{
		MatchupID:   m.MatchupID,
		UserAID:     m.UserAID,
		UserBID:     m.UserBID,
		Format:      entities.ScoringFormat(m.Format),
		Status:      entities.MatchupStatus(m.Status),
		ConfirmedA:  m.ConfirmedA,
		ConfirmedB:  m.ConfirmedB,
		FinalScoreA: m.FinalScoreA,
		FinalScoreB: m.FinalScoreB,
		WinnerID:    m.WinnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if len(m.CapacityA) > 0 {
		var record capacityRecord
		if err := json.Unmarshal(m.CapacityA, &record); err != nil {
			return entities.Matchup{}, err
		}
		matchup.CapacityA = record.toEntity()
	}
	if len(m.CapacityB) > 0 {
		var record capacityRecord
		if err := json.Unmarshal(m.CapacityB, &record); err != nil {
			return entities.Matchup{}, err
		}
		matchup.CapacityB = record.toEntity()
	}
	return matchup, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// SystemClock satisfies ports.Clock for production wiring.

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator satisfies ports.IDGenerator for production wiring.

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.MatchupRepository = (*Repository)(nil)
var _ ports.OutboxWriter = (*Repository)(nil)
var _ ports.OutboxRepository = (*Repository)(nil)
