package entities

import (
	"strings"
	"time"
)

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

// DistributionOrder is the fixed position order lineup distribution walks.
// FLEX comes after the positions it overlaps with so the shared assigned set
// decides overlapping eligibility deterministically.
func DistributionOrder() []Position {
	return []Position{PositionQB, PositionRB, PositionWR, PositionTE, PositionFlex, PositionK, PositionDST}
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

// SlotCapacity enumerates slot counts for the fixed position set. An explicit
// struct keeps malformed position keys out of the system at the boundary.
type SlotCapacity struct {
	QB   int
	RB   int
	WR   int
	TE   int
	Flex int
	K    int
	DST  int
}

// DefaultCapacity is the lineup shape a fresh matchup side starts with.
func DefaultCapacity() SlotCapacity {
	return SlotCapacity{QB: 1, RB: 2, WR: 2, TE: 1, Flex: 1, K: 1, DST: 1}
}

func (c SlotCapacity) Valid() bool {
	for _, position := range DistributionOrder() {
		if c.ValueFor(position) < 0 {
			return false
		}
	}
	return true
}

func (c SlotCapacity) ValueFor(position Position) int {
	switch position {
	case PositionQB:
		return c.QB
	case PositionRB:
		return c.RB
	case PositionWR:
		return c.WR
	case PositionTE:
		return c.TE
	case PositionFlex:
		return c.Flex
	case PositionK:
		return c.K
	case PositionDST:
		return c.DST
	}
	return 0
}

// Min returns the elementwise minimum of two capacities: the effective,
// negotiated lineup shape. Neither side can force a position above what the
// other side requested.
func (c SlotCapacity) Min(other SlotCapacity) SlotCapacity {
	return SlotCapacity{
		QB:   minInt(c.QB, other.QB),
		RB:   minInt(c.RB, other.RB),
		WR:   minInt(c.WR, other.WR),
		TE:   minInt(c.TE, other.TE),
		Flex: minInt(c.Flex, other.Flex),
		K:    minInt(c.K, other.K),
		DST:  minInt(c.DST, other.DST),
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

type MatchupStatus string

const (
	StatusPending MatchupStatus = "pending"
	StatusActive  MatchupStatus = "active"
	StatusFinal   MatchupStatus = "final"
)

type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

// Matchup is one head-to-head contest between two users under a scoring
// format. Exactly one matchup exists per unordered user pair and format;
// UserAID always holds the lexicographically smaller ID.
type Matchup struct {
	MatchupID   string
	UserAID     string
	UserBID     string
	Format      ScoringFormat
	Status      MatchupStatus
	ConfirmedA  bool
	ConfirmedB  bool
	CapacityA   SlotCapacity
	CapacityB   SlotCapacity
	FinalScoreA float64
	FinalScoreB float64
	WinnerID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizePair orders two user IDs into the canonical (A, B) pair.
func NormalizePair(userX, userY string) (string, string) {
	x := strings.TrimSpace(userX)
	y := strings.TrimSpace(userY)
	if x <= y {
		return x, y
	}
	return y, x
}

// SideOf reports which side of the matchup a user sits on.
func (m Matchup) SideOf(userID string) (Side, bool) {
	switch strings.TrimSpace(userID) {
	case m.UserAID:
		return SideA, true
	case m.UserBID:
		return SideB, true
	}
	return "", false
}

// EffectiveCapacity is the negotiated per-position slot count.
func (m Matchup) EffectiveCapacity() SlotCapacity {
	return m.CapacityA.Min(m.CapacityB)
}

// PlayerView is the league-data projection the distributor scores slots from.
type PlayerView struct {
	PlayerID    string
	Position    Position
	Name        string
	Team        string
	Projections map[ScoringFormat]float64
	WeekStats   map[ScoringFormat]float64
	StatsWeek   int
}

// ProjectedPoints returns the projection for the format, zero when unknown.
func (v PlayerView) ProjectedPoints(format ScoringFormat) float64 {
	if v.Projections == nil {
		return 0
	}
	return v.Projections[format]
}

// LivePoints returns the current-week stat line for the format; stat lines
// recorded for any other week are stale and count as zero.
func (v PlayerView) LivePoints(format ScoringFormat, currentWeek int) float64 {
	if v.WeekStats == nil || v.StatsWeek != currentWeek {
		return 0
	}
	return v.WeekStats[format]
}

type GameStatus string

const (
	GameStatusScheduled  GameStatus = "scheduled"
	GameStatusInProgress GameStatus = "inprogress"
	GameStatusHalftime   GameStatus = "halftime"
	GameStatusComplete   GameStatus = "complete"
	GameStatusClosed     GameStatus = "closed"
)

// Terminal reports whether a game can no longer change its score.
func (s GameStatus) Terminal() bool {
	return s == GameStatusComplete || s == GameStatusClosed
}

// GameView is the schedule-feed projection the poller decides from.
type GameView struct {
	GameID  string
	Kickoff time.Time
	Status  GameStatus
}
