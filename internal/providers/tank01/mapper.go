package tank01

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
	"nfl-data-service/internal/domain/teams"
	"nfl-data-service/internal/logging"
)

// normalizeSchedule folds a raw schedule payload into domain games, skipping
// entries that fail to decode or lack a game ID. It returns the parsed games
// and the number of entries skipped.
func normalizeSchedule(raw json.RawMessage, logger *slog.Logger) ([]domaingames.Game, int) {
	entries, ok := scheduleBody(raw)
	if !ok {
		logging.Warn(logger, "unexpected schedule payload shape")
		return nil, 0
	}

	games := make([]domaingames.Game, 0, len(entries))
	skipped := 0
	for _, entry := range entries {
		var rg rawGame
		if err := json.Unmarshal(entry, &rg); err != nil {
			logging.Warn(logger, "skipping malformed schedule entry", "error", err)
			skipped++
			continue
		}
		if rg.GameID == "" {
			logging.Warn(logger, "skipping schedule entry without game id")
			skipped++
			continue
		}
		games = append(games, mapGame(rg))
	}
	return games, skipped
}

// scheduleBody accepts either {"body": [...]} or a bare top-level list.
func scheduleBody(raw json.RawMessage) ([]json.RawMessage, bool) {
	var wrapper struct {
		Body []json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Body != nil {
		return wrapper.Body, true
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, true
	}
	return nil, false
}

func mapGame(rg rawGame) domaingames.Game {
	neutral := rg.NeutralSite == "True"
	return domaingames.Game{
		ID:          rg.GameID,
		HomeTeam:    teams.FullName(rg.Home),
		AwayTeam:    teams.FullName(rg.Away),
		HomeCode:    rg.Home,
		AwayCode:    rg.Away,
		Kickoff:     formatKickoff(rg.GameTime, rg.GameDate),
		Week:        parseWeek(rg.GameWeek),
		Season:      rg.Season.Int(domaingames.DefaultSeason),
		Status:      mapStatus(rg.GameStatus),
		GameDate:    rg.GameDate,
		EspnID:      rg.EspnID.String(),
		NeutralSite: neutral,
		Venue:       teams.Venue(rg.Home, neutral),
	}
}

// parseWeek extracts N from the upstream's "Week N" label, defaulting to 1.
func parseWeek(label string) int {
	trimmed := strings.TrimPrefix(label, "Week ")
	if trimmed == label {
		return 1
	}
	week, err := strconv.Atoi(strings.TrimSpace(trimmed))
	if err != nil || week < 1 {
		return 1
	}
	return week
}

func mapStatus(status string) string {
	if status == "" {
		return domaingames.StatusScheduled
	}
	return strings.ToLower(status)
}

// normalizeOdds extracts one game's odds from a payload whose "body" maps
// game IDs to per-game odds objects. A missing game ID is reported as absent,
// not as an error.
func normalizeOdds(raw json.RawMessage, gameID string, logger *slog.Logger) (odds.Odds, bool) {
	var wrapper struct {
		Body map[string]json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		logging.Warn(logger, "unexpected odds payload shape", "error", err)
		return odds.Odds{}, false
	}
	gameRaw, ok := wrapper.Body[gameID]
	if !ok {
		return odds.Odds{}, false
	}

	var meta rawOddsMeta
	if err := json.Unmarshal(gameRaw, &meta); err != nil {
		logging.Warn(logger, "skipping malformed odds entry",
			slog.String(logging.FieldGameID, gameID), "error", err)
		return odds.Odds{}, false
	}

	var books map[string]json.RawMessage
	if err := json.Unmarshal(gameRaw, &books); err != nil {
		books = nil
	}

	record := odds.Odds{
		GameID:      gameID,
		LastUpdated: meta.LastUpdated.String(),
		GameDate:    meta.GameDate,
		AwayTeam:    meta.AwayTeam,
		HomeTeam:    meta.HomeTeam,
		Sportsbooks: make(map[string]odds.BookLines),
	}

	for _, book := range sportsbooks {
		bookRaw, ok := books[book]
		if !ok {
			continue
		}
		var rb rawBook
		if err := json.Unmarshal(bookRaw, &rb); err != nil {
			logging.Warn(logger, "skipping malformed sportsbook entry",
				slog.String(logging.FieldGameID, gameID), "book", book, "error", err)
			continue
		}
		record.Sportsbooks[book] = mapBook(rb)
	}
	return record, true
}

func mapBook(rb rawBook) odds.BookLines {
	implied := rb.ImpliedTotals
	if implied == nil {
		implied = map[string]any{}
	}
	return odds.BookLines{
		Spread: odds.Spread{
			Away:     rb.AwayTeamSpread.String(),
			Home:     rb.HomeTeamSpread.String(),
			AwayOdds: rb.AwayTeamSpreadOdds.String(),
			HomeOdds: rb.HomeTeamSpreadOdds.String(),
		},
		Total: odds.Total{
			Over:      rb.TotalOver.String(),
			Under:     rb.TotalUnder.String(),
			OverOdds:  rb.TotalOverOdds.String(),
			UnderOdds: rb.TotalUnderOdds.String(),
		},
		Moneyline: odds.Moneyline{
			Away: rb.AwayTeamMLOdds.String(),
			Home: rb.HomeTeamMLOdds.String(),
		},
		ImpliedTotals: implied,
	}
}
