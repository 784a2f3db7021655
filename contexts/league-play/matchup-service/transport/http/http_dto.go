package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateMatchupRequest struct {
	OpponentID string `json:"opponent_id"`
	Format     string `json:"format"`
}

type CapacityPayload struct {
	QB   int `json:"qb"`
	RB   int `json:"rb"`
	WR   int `json:"wr"`
	TE   int `json:"te"`
	Flex int `json:"flex"`
	K    int `json:"k"`
	DST  int `json:"dst"`
}

type EditCapacityRequest struct {
	Capacity CapacityPayload `json:"capacity"`
}

type MatchupResponse struct {
	MatchupID         string          `json:"matchup_id"`
	UserAID           string          `json:"user_a_id"`
	UserBID           string          `json:"user_b_id"`
	Format            string          `json:"format"`
	Status            string          `json:"status"`
	ConfirmedA        bool            `json:"confirmed_a"`
	ConfirmedB        bool            `json:"confirmed_b"`
	CapacityA         CapacityPayload `json:"capacity_a"`
	CapacityB         CapacityPayload `json:"capacity_b"`
	EffectiveCapacity CapacityPayload `json:"effective_capacity"`
	FinalScoreA       float64         `json:"final_score_a"`
	FinalScoreB       float64         `json:"final_score_b"`
	WinnerID          string          `json:"winner_id,omitempty"`
}

type SlotResponse struct {
	Position   string  `json:"position"`
	PlayerID   string  `json:"player_id,omitempty"`
	OriginRank int     `json:"origin_rank,omitempty"`
	Projected  float64 `json:"projected"`
	Live       float64 `json:"live"`
}

type LineupResponse struct {
	MatchupID string         `json:"matchup_id"`
	Week      int            `json:"week"`
	SideA     []SlotResponse `json:"side_a"`
	SideB     []SlotResponse `json:"side_b"`
	TotalA    float64        `json:"total_a"`
	TotalB    float64        `json:"total_b"`
	Burned    []string       `json:"burned,omitempty"`
}
