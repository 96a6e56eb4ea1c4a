package tank01

import "time"

const (
	defaultBaseURL     = "https://tank01-nfl-live-in-game-real-time-statistics-nfl.p.rapidapi.com"
	rapidAPIHost       = "tank01-nfl-live-in-game-real-time-statistics-nfl.p.rapidapi.com"
	userAgent          = "nfl-data-service/1.0"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512

	endpointGamesForWeek = "/getNFLGamesForWeek"
	endpointBettingOdds  = "/getNFLBettingOdds"
)

// ProviderName identifies this provider in logs and metrics.
const ProviderName = "tank01"

// sportsbooks is the fixed set of books extracted from odds payloads, in the
// order the upstream documents them.
var sportsbooks = []string{
	"betmgm",
	"bet365",
	"fanduel",
	"ballybet",
	"espnbet",
	"betrivers",
	"caesars_sportsbook",
	"draftkings",
}
