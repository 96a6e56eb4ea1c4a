package games

import "time"

// RegularSeasonWeeks is the number of weeks in an NFL regular season.
const RegularSeasonWeeks = 18

// DefaultSeason is assumed when the upstream omits or garbles the season field.
const DefaultSeason = 2025

// StatusScheduled is the fallback game status when the upstream omits one.
const StatusScheduled = "scheduled"

// Game is the canonical schedule record exposed by the service.
type Game struct {
	ID          string    `json:"gameId"`
	HomeTeam    string    `json:"homeTeam"`
	AwayTeam    string    `json:"awayTeam"`
	HomeCode    string    `json:"homeAbbreviation"`
	AwayCode    string    `json:"awayAbbreviation"`
	Kickoff     time.Time `json:"gameTime"`
	Week        int       `json:"week"`
	Season      int       `json:"season"`
	Status      string    `json:"status"`
	GameDate    string    `json:"gameDate"`
	EspnID      string    `json:"espnId,omitempty"`
	NeutralSite bool      `json:"neutralSite"`
	Venue       string    `json:"venue"`
}

// WeekResponse is the payload returned by /games/week/{week}.
type WeekResponse struct {
	Week   int    `json:"week"`
	Season int    `json:"season"`
	Games  []Game `json:"games"`
}

// NewWeekResponse builds a WeekResponse payload.
func NewWeekResponse(week, season int, games []Game) WeekResponse {
	return WeekResponse{
		Week:   week,
		Season: season,
		Games:  games,
	}
}
