package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PlayerResponse struct {
	PlayerID    string             `json:"player_id"`
	Position    string             `json:"position"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Team        string             `json:"team"`
	Active      bool               `json:"active"`
	Projections map[string]float64 `json:"projections"`
	WeekStats   map[string]float64 `json:"week_stats,omitempty"`
	StatsWeek   int                `json:"stats_week,omitempty"`
}

type PlayerListResponse struct {
	Position string           `json:"position"`
	Format   string           `json:"format"`
	Players  []PlayerResponse `json:"players"`
}

type WeekResponse struct {
	Season int    `json:"season"`
	Week   int    `json:"week"`
	Phase  string `json:"phase"`
}

type SyncResponse struct {
	Week    int `json:"week"`
	Total   int `json:"total"`
	Written int `json:"written"`
}
