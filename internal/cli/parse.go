package cli

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// parseDate parses a --date flag; empty means today (UTC).
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// parseMoment combines --date and --at into one timestamp. An empty --at
// means the current clock time; --at accepts HH:MM on the chosen date or
// a full RFC3339 stamp.
func parseMoment(dateFlag, atFlag string) (time.Time, error) {
	date, err := parseDate(dateFlag)
	if err != nil {
		return time.Time{}, err
	}

	if atFlag == "" {
		now := time.Now().UTC()
		return time.Date(date.Year(), date.Month(), date.Day(),
			now.Hour(), now.Minute(), now.Second(), 0, time.UTC), nil
	}

	if clock, err := time.Parse(clockLayout, atFlag); err == nil {
		return time.Date(date.Year(), date.Month(), date.Day(),
			clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
	}

	if stamp, err := time.Parse(time.RFC3339, atFlag); err == nil {
		return stamp.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM or RFC3339)", atFlag)
}
