package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// WorkdayService orchestrates repository calls for the CLI. It adds no
// validation of its own; domain and repository errors propagate unchanged
// in kind so callers can branch with errors.Is.
type WorkdayService interface {
	// Create registers an empty workday for the given date.
	Create(ctx context.Context, date time.Time) error
	// ClockIn opens a session at the given time, creating the workday on
	// the first clock-in of a day.
	ClockIn(ctx context.Context, at time.Time) error
	// ClockOut closes the open session of the day at the given time.
	ClockOut(ctx context.Context, at time.Time) error
	// ListAll returns every stored workday.
	ListAll(ctx context.Context) ([]*domain.Workday, error)
	// SessionsInRange returns the sessions of date's workday whose
	// intervals intersect [start, end]; a nil end is unbounded.
	SessionsInRange(ctx context.Context, date time.Time, start time.Time, end *time.Time) ([]domain.Session, error)
}
