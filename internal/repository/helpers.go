package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// dateLayout is the calendar-date key format used by every backend.
const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the
// given layout. NULL, empty, and unparseable values all map to nil.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a SQLite-storable value,
// nil pointer mapping to SQL NULL.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// restoreWorkday rebuilds an aggregate from stored sessions. Sessions are
// replayed through AddSession so the store cannot hand back a workday that
// violates the aggregate's invariants; a failure here means the store is
// corrupt.
func restoreWorkday(date time.Time, sessions []domain.Session) (*domain.Workday, error) {
	wd := domain.NewWorkday(date)
	for _, s := range sessions {
		if err := wd.AddSession(s); err != nil {
			return nil, fmt.Errorf("restoring workday %s: %w", date.Format(dateLayout), err)
		}
	}
	return wd, nil
}
