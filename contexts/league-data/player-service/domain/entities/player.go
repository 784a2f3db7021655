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

// Positions is the fixed position set in canonical order. Lineup slot
// distribution walks positions in exactly this order.
func Positions() []Position {
	return []Position{PositionQB, PositionRB, PositionWR, PositionTE, PositionFlex, PositionK, PositionDST}
}

// EligiblePositions returns the player positions that can fill a roster slot.
// FLEX is a slot, not a player attribute: no player record carries it, and the
// FLEX pool draws from the RB, WR, and TE pools. Every other slot maps to
// itself.
func EligiblePositions(p Position) []Position {
	if p == PositionFlex {
		return []Position{PositionRB, PositionWR, PositionTE}
	}
	return []Position{p}
}

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

type Player struct {
	PlayerID    string
	Position    Position
	FirstName   string
	LastName    string
	Team        string
	Active      bool
	Projections map[ScoringFormat]float64
	WeekStats   map[ScoringFormat]float64
	StatsWeek   int
	UpdatedAt   time.Time
}

// ProjectedPoints returns the third-party projection for the format, zero when
// no figure has been synced.
func (p Player) ProjectedPoints(format ScoringFormat) float64 {
	if p.Projections == nil {
		return 0
	}
	return p.Projections[format]
}

// LivePoints returns the current-week stat line for the format. Stat lines
// recorded for any other week are stale and count as zero.
func (p Player) LivePoints(format ScoringFormat, currentWeek int) float64 {
	if p.WeekStats == nil || p.StatsWeek != currentWeek {
		return 0
	}
	return p.WeekStats[format]
}

type WeekPhase string

const (
	PhasePre     WeekPhase = "pre"
	PhaseRegular WeekPhase = "regular"
	PhasePost    WeekPhase = "post"
)

// WeekDescriptor is the current-period descriptor consumed from the external
// feed.
type WeekDescriptor struct {
	Season int
	Week   int
	Phase  WeekPhase
}

type GameStatus string

const (
	GameStatusScheduled  GameStatus = "scheduled"
	GameStatusInProgress GameStatus = "inprogress"
	GameStatusHalftime   GameStatus = "halftime"
	GameStatusComplete   GameStatus = "complete"
	GameStatusClosed     GameStatus = "closed"
)

// Game is one scheduled game in a week, as reported by the schedule feed.
type Game struct {
	GameID  string
	Week    int
	Kickoff time.Time
	Status  GameStatus
}

// StatLine is one player's weekly stat line already converted to the three
// scoring formats by the feed adapter.
type StatLine struct {
	PlayerID string
	Week     int
	Points   map[ScoringFormat]float64
}
