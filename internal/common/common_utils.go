package common

import (
	"fmt"
	"regexp"
	"time"

	"skyboard/flightdeck/internal/constants"
)

var (
	flightNumberPrefixRe = regexp.MustCompile(`^([A-Z0-9]{2,3})\d+`)
	aircraftCoreRe       = regexp.MustCompile(`([A-Z0-9]{3,4})`)
	aircraftFamilyRe     = regexp.MustCompile(`([A-Z0-9]{3})`)
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// AirlineLogoURL returns the logo URL for an airline code, or "" for an empty code
func AirlineLogoURL(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf(constants.AirlineLogoURLFormat, code)
}

// FlightNumberPrefix extracts the 2-3 char airline designator of a flight number ("G31234" -> "G31")
func FlightNumberPrefix(flightNumber string) string {
	m := flightNumberPrefixRe.FindStringSubmatch(flightNumber)
	if m == nil {
		return ""
	}
	return m[1]
}

// AircraftCoreCode returns the first 3-4 char alphanumeric run ("B38M" -> "B38M", "a320" -> "")
func AircraftCoreCode(code string) string {
	return aircraftCoreRe.FindString(code)
}

// AircraftFamilyCode returns the first 3 char alphanumeric run ("B738" -> "B73")
func AircraftFamilyCode(code string) string {
	return aircraftFamilyRe.FindString(code)
}

// FormatScheduleDuration renders arrival minus departure as "1h 30m".
// Whole days are dropped and negative spans wrap around the day.
func FormatScheduleDuration(departure, arrival int64) string {
	secs := (arrival - departure) % 86400
	if secs < 0 {
		secs += 86400
	}
	return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
}

// FormatClock renders a unix timestamp as HH:MM in loc
func FormatClock(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(ts, 0).In(loc).Format("15:04")
}

// FormatDate renders a unix timestamp as YYYY-MM-DD in loc
func FormatDate(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(ts, 0).In(loc).Format("2006-01-02")
}

// StringPtr returns nil for "" so optional fields encode as JSON null
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FirstNonEmpty returns the first non-empty value
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
