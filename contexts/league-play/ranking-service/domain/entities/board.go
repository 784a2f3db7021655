package entities

import "time"

type Position string

const (
	PositionQB   Position = "QB"
	PositionRB   Position = "RB"
	PositionWR   Position = "WR"
	PositionTE   Position = "TE"
	PositionFlex Position = "FLEX"
	PositionK    Position = "K"
	PositionDST  Position = "DST"
)

func IsValidPosition(p Position) bool {
	switch p {
	case PositionQB, PositionRB, PositionWR, PositionTE, PositionFlex, PositionK, PositionDST:
		return true
	}
	return false
}

type ScoringFormat string

const (
	FormatStandard ScoringFormat = "standard"
	FormatHalfPPR  ScoringFormat = "half_ppr"
	FormatPPR      ScoringFormat = "ppr"
)

func IsValidFormat(f ScoringFormat) bool {
	return f == FormatStandard || f == FormatHalfPPR || f == FormatPPR
}

// RankingEntry is one player's slot in a board. Ranks are 1-indexed, unique,
// and contiguous across the board at all times.
type RankingEntry struct {
	PlayerID string
	Rank     int
	Compared bool
}

type SessionPhase string

const (
	PhaseAwaitingComparison SessionPhase = "awaiting_comparison"
	PhasePromoting          SessionPhase = "promoting"
	PhaseSettled            SessionPhase = "settled"
)

// PromotionState tracks an in-flight promotion cycle: the promoted player
// duels progressively higher-ranked incumbents until it loses or reaches the
// top. OriginLoserID is the loser of the comparison that opened the cycle.
type PromotionState struct {
	PromotedID    string
	CycleIndex    int
	OriginLoserID string
}

// Board is one user's ranking of a position's player pool under a scoring
// format. Promotion is non-nil only while a promotion cycle is open.
type Board struct {
	UserID    string
	Position  Position
	Format    ScoringFormat
	Entries   []RankingEntry
	Promotion *PromotionState
	UpdatedAt time.Time
}

// Phase derives the wizard phase from board state.
func (b Board) Phase() SessionPhase {
	if b.Promotion != nil {
		return PhasePromoting
	}
	for _, entry := range b.Entries {
		if !entry.Compared {
			return PhaseAwaitingComparison
		}
	}
	return PhaseSettled
}

// OrderedIDs returns the player IDs sorted by rank.
func (b Board) OrderedIDs() []string {
	ids := make([]string, len(b.Entries))
	for _, entry := range b.Entries {
		if entry.Rank >= 1 && entry.Rank <= len(b.Entries) {
			ids[entry.Rank-1] = entry.PlayerID
		}
	}
	return ids
}
