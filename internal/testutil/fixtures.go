package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// Day builds a UTC calendar date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// At builds a timestamp on the given date.
func At(date time.Time, hour, min int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, min, 0, 0, time.UTC)
}

// WorkdayOption mutates a workday under construction.
type WorkdayOption func(t *testing.T, w *domain.Workday)

// WithClosedSession adds a closed session at the given hours.
func WithClosedSession(startHour, startMin, endHour, endMin int) WorkdayOption {
	return func(t *testing.T, w *domain.Workday) {
		t.Helper()
		s := domain.NewClosedSession(At(w.Date(), startHour, startMin), At(w.Date(), endHour, endMin))
		if err := w.AddSession(s); err != nil {
			t.Fatalf("adding fixture session: %v", err)
		}
	}
}

// WithOpenSession adds an open session at the given hour.
func WithOpenSession(startHour, startMin int) WorkdayOption {
	return func(t *testing.T, w *domain.Workday) {
		t.Helper()
		if err := w.AddSession(domain.NewOpenSession(At(w.Date(), startHour, startMin))); err != nil {
			t.Fatalf("adding fixture session: %v", err)
		}
	}
}

// NewTestWorkday builds a workday for the given date with optional sessions.
func NewTestWorkday(t *testing.T, date time.Time, opts ...WorkdayOption) *domain.Workday {
	t.Helper()
	w := domain.NewWorkday(date)
	for _, opt := range opts {
		opt(t, w)
	}
	return w
}
