package odds

// Spread holds the point-spread lines and prices for one sportsbook.
type Spread struct {
	Away     string `json:"away"`
	Home     string `json:"home"`
	AwayOdds string `json:"awayOdds"`
	HomeOdds string `json:"homeOdds"`
}

// Total holds the over/under lines and prices for one sportsbook.
type Total struct {
	Over      string `json:"over"`
	Under     string `json:"under"`
	OverOdds  string `json:"overOdds"`
	UnderOdds string `json:"underOdds"`
}

// Moneyline holds the straight-up prices for one sportsbook.
type Moneyline struct {
	Away string `json:"away"`
	Home string `json:"home"`
}

// BookLines groups every market a single sportsbook quotes for a game.
// Missing leaves stay as empty strings; a book never fabricates a market.
type BookLines struct {
	Spread        Spread         `json:"spread"`
	Total         Total          `json:"total"`
	Moneyline     Moneyline      `json:"moneyline"`
	ImpliedTotals map[string]any `json:"impliedTotals"`
}

// Odds is the canonical betting-odds record for one game. Only sportsbooks
// present in the upstream payload appear in Sportsbooks.
type Odds struct {
	GameID      string               `json:"gameId"`
	LastUpdated string               `json:"lastUpdated"`
	GameDate    string               `json:"gameDate"`
	AwayTeam    string               `json:"awayTeam"`
	HomeTeam    string               `json:"homeTeam"`
	Sportsbooks map[string]BookLines `json:"sportsbooks"`
}
