package commands

import (
	"context"
	"encoding/json"
	"time"

	"gridiron/contexts/league-play/matchup-service/ports"
)

const (
	EventMatchupActivated = "matchup.activated"
	EventMatchupFinalized = "matchup.finalized"

	sourceService = "league-play/matchup-service"
)

// MatchupActivatedPayload announces both sides confirming the same terms.
type MatchupActivatedPayload struct {
	MatchupID string `json:"matchup_id"`
	UserAID   string `json:"user_a_id"`
	UserBID   string `json:"user_b_id"`
	Format    string `json:"format"`
}

// MatchupFinalizedPayload carries the settled result.
type MatchupFinalizedPayload struct {
	MatchupID string  `json:"matchup_id"`
	UserAID   string  `json:"user_a_id"`
	UserBID   string  `json:"user_b_id"`
	ScoreA    float64 `json:"score_a"`
	ScoreB    float64 `json:"score_b"`
	WinnerID  string  `json:"winner_id,omitempty"`
	Week      int     `json:"week"`
}

func appendOutboxEvent(
	ctx context.Context,
	outbox ports.OutboxWriter,
	idGen ports.IDGenerator,
	eventType string,
	matchupID string,
	occurredAt time.Time,
	payload any,
) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	eventID, err := idGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope := ports.EventEnvelope{
		EventID:       eventID,
		EventType:     eventType,
		OccurredAt:    occurredAt,
		SourceService: sourceService,
		SchemaVersion: 1,
		PartitionKey:  matchupID,
		Data:          data,
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	outboxID, err := idGen.NewID(ctx)
	if err != nil {
		return err
	}
	return outbox.AppendOutbox(ctx, ports.OutboxMessage{
		OutboxID:     outboxID,
		EventType:    eventType,
		PartitionKey: matchupID,
		Payload:      body,
		CreatedAt:    occurredAt,
	})
}
