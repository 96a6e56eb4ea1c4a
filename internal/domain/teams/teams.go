package teams

// UnknownVenue is returned for abbreviations with no known home stadium.
const UnknownVenue = "Unknown Stadium"

// NeutralVenue is the venue label for games not played at either team's stadium.
const NeutralVenue = "Neutral Site"

var fullNames = map[string]string{
	"ARI": "Arizona Cardinals",
	"ATL": "Atlanta Falcons",
	"BAL": "Baltimore Ravens",
	"BUF": "Buffalo Bills",
	"CAR": "Carolina Panthers",
	"CHI": "Chicago Bears",
	"CIN": "Cincinnati Bengals",
	"CLE": "Cleveland Browns",
	"DAL": "Dallas Cowboys",
	"DEN": "Denver Broncos",
	"DET": "Detroit Lions",
	"GB":  "Green Bay Packers",
	"HOU": "Houston Texans",
	"IND": "Indianapolis Colts",
	"JAX": "Jacksonville Jaguars",
	"KC":  "Kansas City Chiefs",
	"LAC": "Los Angeles Chargers",
	"LAR": "Los Angeles Rams",
	"LV":  "Las Vegas Raiders",
	"MIA": "Miami Dolphins",
	"MIN": "Minnesota Vikings",
	"NE":  "New England Patriots",
	"NO":  "New Orleans Saints",
	"NYG": "New York Giants",
	"NYJ": "New York Jets",
	"PHI": "Philadelphia Eagles",
	"PIT": "Pittsburgh Steelers",
	"SEA": "Seattle Seahawks",
	"SF":  "San Francisco 49ers",
	"TB":  "Tampa Bay Buccaneers",
	"TEN": "Tennessee Titans",
	"WSH": "Washington Commanders",
}

var venues = map[string]string{
	"ARI": "State Farm Stadium",
	"ATL": "Mercedes-Benz Stadium",
	"BAL": "M&T Bank Stadium",
	"BUF": "Highmark Stadium",
	"CAR": "Bank of America Stadium",
	"CHI": "Soldier Field",
	"CIN": "Paycor Stadium",
	"CLE": "Cleveland Browns Stadium",
	"DAL": "AT&T Stadium",
	"DEN": "Empower Field at Mile High",
	"DET": "Ford Field",
	"GB":  "Lambeau Field",
	"HOU": "NRG Stadium",
	"IND": "Lucas Oil Stadium",
	"JAX": "EverBank Stadium",
	"KC":  "Arrowhead Stadium",
	"LAC": "SoFi Stadium",
	"LAR": "SoFi Stadium",
	"LV":  "Allegiant Stadium",
	"MIA": "Hard Rock Stadium",
	"MIN": "U.S. Bank Stadium",
	"NE":  "Gillette Stadium",
	"NO":  "Caesars Superdome",
	"NYG": "MetLife Stadium",
	"NYJ": "MetLife Stadium",
	"PHI": "Lincoln Financial Field",
	"PIT": "Acrisure Stadium",
	"SEA": "Lumen Field",
	"SF":  "Levi's Stadium",
	"TB":  "Raymond James Stadium",
	"TEN": "Nissan Stadium",
	"WSH": "FedExField",
}

// FullName resolves a team abbreviation to its franchise name.
// Unknown abbreviations come back unchanged so callers always get something usable.
func FullName(code string) string {
	if name, ok := fullNames[code]; ok {
		return name
	}
	return code
}

// Venue resolves the venue for a game hosted by the given team. Neutral-site
// games resolve to NeutralVenue regardless of the host's stadium.
func Venue(homeCode string, neutralSite bool) string {
	if neutralSite {
		return NeutralVenue
	}
	if venue, ok := venues[homeCode]; ok {
		return venue
	}
	return UnknownVenue
}
