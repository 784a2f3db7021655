package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gridiron/contexts/league-play/ranking-service/domain/entities"
	domainerrors "gridiron/contexts/league-play/ranking-service/domain/errors"

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

func (r *Repository) SaveBoard(ctx context.Context, board entities.Board) error {
	row, err := boardModelFromEntity(board)
	if err != nil {
		return r.logError("ranking_repo_encode_failed", err,
			"user_id", strings.TrimSpace(board.UserID),
			"position", string(board.Position),
		)
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "position"}, {Name: "format"}},
		DoUpdates: clause.Assignments(map[string]any{
			"entries":    row.Entries,
			"promotion":  row.Promotion,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return r.logError("ranking_repo_save_failed", create.Error,
			"user_id", strings.TrimSpace(board.UserID),
			"position", string(board.Position),
			"format", string(board.Format),
		)
	}
	return nil
}

func (r *Repository) GetBoard(
	ctx context.Context,
	userID string,
	position entities.Position,
	format entities.ScoringFormat,
) (entities.Board, error) {
	var row boardModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND position = ? AND format = ?",
			strings.TrimSpace(userID), string(position), string(format)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Board{}, domainerrors.ErrBoardNotFound
		}
		return entities.Board{}, r.logError("ranking_repo_get_failed", err,
			"user_id", strings.TrimSpace(userID),
			"position", string(position),
		)
	}
	return row.toEntity()
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "league-play/ranking-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("ranking repository operation failed", fields...)
	return err
}

type boardModel struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Position  string    `gorm:"column:position;primaryKey"`
	Format    string    `gorm:"column:format;primaryKey"`
	Entries   []byte    `gorm:"column:entries;type:jsonb"`
	Promotion []byte    `gorm:"column:promotion;type:jsonb"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (boardModel) TableName() string {
	return "ranking_boards"
}

type entryRecord struct {
	PlayerID string `json:"player_id"`
	Rank     int    `json:"rank"`
	Compared bool   `json:"compared"`
}

type promotionRecord struct {
	PromotedID    string `json:"promoted_id"`
	CycleIndex    int    `json:"cycle_index"`
	OriginLoserID string `json:"origin_loser_id"`
}

func boardModelFromEntity(board entities.Board) (boardModel, error) {
	records := make([]entryRecord, len(board.Entries))
	for i, entry := range board.Entries {
		records[i] = entryRecord{
			PlayerID: entry.PlayerID,
			Rank:     entry.Rank,
			Compared: entry.Compared,
		}
	}
	entries, err := json.Marshal(records)
	if err != nil {
		return boardModel{}, err
	}
	var promotion []byte
	if board.Promotion != nil {
		promotion, err = json.Marshal(promotionRecord{
			PromotedID:    board.Promotion.PromotedID,
			CycleIndex:    board.Promotion.CycleIndex,
			OriginLoserID: board.Promotion.OriginLoserID,
		})
		if err != nil {
			return boardModel{}, err
		}
	}
	return boardModel{
		UserID:    strings.TrimSpace(board.UserID),
		Position:  string(board.Position),
		Format:    string(board.Format),
		Entries:   entries,
		Promotion: promotion,
		UpdatedAt: board.UpdatedAt,
	}, nil
}

func (m boardModel) toEntity() (entities.Board, error) {
	board := entities.Board{
		UserID:    m.UserID,
		Position:  entities.Position(m.Position),
		Format:    entities.ScoringFormat(m.Format),
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Entries) > 0 {
		var records []entryRecord
		if err := json.Unmarshal(m.Entries, &records); err != nil {
			return entities.Board{}, err
		}
		board.Entries = make([]entities.RankingEntry, len(records))
		for i, record := range records {
			board.Entries[i] = entities.RankingEntry{
				PlayerID: record.PlayerID,
				Rank:     record.Rank,
				Compared: record.Compared,
			}
		}
	}
	if len(m.Promotion) > 0 {
		var record promotionRecord
		if err := json.Unmarshal(m.Promotion, &record); err != nil {
			return entities.Board{}, err
		}
		if record.PromotedID != "" {
			board.Promotion = &entities.PromotionState{
				PromotedID:    record.PromotedID,
				CycleIndex:    record.CycleIndex,
				OriginLoserID: record.OriginLoserID,
			}
		}
	}
	return board, nil
}

// SystemClock satisfies ports.Clock for production wiring.

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
