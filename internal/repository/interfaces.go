package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// Storage-mediation errors. Kept separate from the domain's validation
// errors; callers branch on kind with errors.Is.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
)

// WorkdayPersistence is the storage contract for workdays. Backends are
// swappable (in-memory, flat-file, SQLite) and make no uniqueness promise
// of their own; "one workday per date" is enforced a level up by
// WorkdayRepository. Implementations are not required to be safe for
// concurrent use.
type WorkdayPersistence interface {
	// Insert stores a new workday.
	Insert(ctx context.Context, wd *domain.Workday) error
	// Update replaces the stored workday for wd's date. Returns ErrNotFound
	// (wrapped) if no workday exists for that date.
	Update(ctx context.Context, wd *domain.Workday) error
	// FindByDay returns the workday for the given date, or a wrapped
	// ErrNotFound.
	FindByDay(ctx context.Context, date time.Time) (*domain.Workday, error)
	// FindAll returns a snapshot of every stored workday.
	FindAll(ctx context.Context) ([]*domain.Workday, error)
}
