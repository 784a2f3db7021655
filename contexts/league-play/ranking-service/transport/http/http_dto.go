package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ComparisonRequest struct {
	WinnerID string `json:"winner_id"`
	LoserID  string `json:"loser_id"`
}

type PromotionDuelRequest struct {
	ChosenID string `json:"chosen_id"`
}

type EntryResponse struct {
	PlayerID string `json:"player_id"`
	Rank     int    `json:"rank"`
	Compared bool   `json:"compared"`
}

type PairResponse struct {
	ChallengerID string `json:"challenger_id"`
	IncumbentID  string `json:"incumbent_id"`
}

type BoardResponse struct {
	UserID   string          `json:"user_id"`
	Position string          `json:"position"`
	Format   string          `json:"format"`
	Phase    string          `json:"phase"`
	Entries  []EntryResponse `json:"entries"`
	NextPair *PairResponse   `json:"next_pair,omitempty"`
	NextDuel *PairResponse   `json:"next_duel,omitempty"`
}
