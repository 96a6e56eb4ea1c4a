package tank01

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexString decodes JSON fields the upstream serves inconsistently as either
// a string or a bare number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return string(f) }

// Int converts the value, falling back when it is absent or malformed.
func (f flexString) Int(fallback int) int {
	v, err := strconv.Atoi(string(f))
	if err != nil {
		return fallback
	}
	return v
}

// rawGame mirrors one schedule entry as the upstream serves it.
type rawGame struct {
	GameID      string     `json:"gameID"`
	Away        string     `json:"away"`
	Home        string     `json:"home"`
	GameWeek    string     `json:"gameWeek"`
	Season      flexString `json:"season"`
	GameTime    string     `json:"gameTime"`
	GameDate    string     `json:"gameDate"`
	GameStatus  string     `json:"gameStatus"`
	EspnID      flexString `json:"espnID"`
	NeutralSite string     `json:"neutralSite"`
}

// rawOddsMeta carries the per-game metadata fields of an odds entry. The
// sportsbook blobs live beside these keys in the same object and are decoded
// separately.
type rawOddsMeta struct {
	LastUpdated flexString `json:"last_updated_e_time"`
	GameDate    string     `json:"gameDate"`
	AwayTeam    string     `json:"awayTeam"`
	HomeTeam    string     `json:"homeTeam"`
}

// rawBook mirrors one sportsbook's odds blob.
type rawBook struct {
	AwayTeamSpread     flexString     `json:"awayTeamSpread"`
	HomeTeamSpread     flexString     `json:"homeTeamSpread"`
	AwayTeamSpreadOdds flexString     `json:"awayTeamSpreadOdds"`
	HomeTeamSpreadOdds flexString     `json:"homeTeamSpreadOdds"`
	TotalOver          flexString     `json:"totalOver"`
	TotalUnder         flexString     `json:"totalUnder"`
	TotalOverOdds      flexString     `json:"totalOverOdds"`
	TotalUnderOdds     flexString     `json:"totalUnderOdds"`
	AwayTeamMLOdds     flexString     `json:"awayTeamMLOdds"`
	HomeTeamMLOdds     flexString     `json:"homeTeamMLOdds"`
	ImpliedTotals      map[string]any `json:"impliedTotals"`
}
