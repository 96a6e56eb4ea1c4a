package tank01

import (
	"strconv"
	"strings"
	"time"

	"nfl-data-service/internal/timeutil"
)

// leagueZone is the fixed offset the upstream quotes kickoff times in.
// Deliberately not a DST-aware location: the feed itself is pinned to -04:00.
var leagueZone = time.FixedZone("ET", -4*60*60)

// kickoffSentinel is emitted when the upstream time or date cannot be parsed.
var kickoffSentinel = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// formatKickoff composes the upstream's packed date (YYYYMMDD) and 12-hour
// clock ("8:20p") into an instant at the league's fixed offset. A time with
// no clock separator yields midnight on the date; empty or unparsable inputs
// yield the sentinel.
func formatKickoff(timeStr, dateStr string) time.Time {
	if timeStr == "" || dateStr == "" {
		return kickoffSentinel
	}

	date, err := time.ParseInLocation(timeutil.CompactDateLayout, dateStr, leagueZone)
	if err != nil {
		return kickoffSentinel
	}

	if !strings.Contains(timeStr, ":") {
		return date
	}

	hour, minute, ok := parseClock(timeStr)
	if !ok {
		return kickoffSentinel
	}
	return date.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// parseClock parses "H:MMa" / "H:MMp" into 24-hour components. Hour 12 with
// "a" maps to 0; any non-12 hour with "p" gains 12.
func parseClock(timeStr string) (hour, minute int, ok bool) {
	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 || len(parts[1]) < 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}

	rest := parts[1]
	period := strings.ToLower(rest[len(rest)-1:])
	minute, err = strconv.Atoi(rest[:len(rest)-1])
	if err != nil {
		return 0, 0, false
	}

	switch period {
	case "p":
		if hour != 12 {
			hour += 12
		}
	case "a":
		if hour == 12 {
			hour = 0
		}
	default:
		return 0, 0, false
	}
	return hour, minute, true
}
