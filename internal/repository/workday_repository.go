package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// WorkdayRepository mediates access to a WorkdayPersistence backend and
// enforces the one-workday-per-date rule. It holds no state beyond the
// persistence handle and a lock: writes are exclusive, reads may overlap,
// because backends are not assumed to be internally thread-safe.
type WorkdayRepository struct {
	mu          sync.RWMutex
	persistence WorkdayPersistence
}

func NewWorkdayRepository(p WorkdayPersistence) *WorkdayRepository {
	return &WorkdayRepository{persistence: p}
}

// Create stores a new workday, failing with ErrAlreadyExists if one already
// exists for the same date. The store is not touched in the failure case.
func (r *WorkdayRepository) Create(ctx context.Context, wd *domain.Workday) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.persistence.FindByDay(ctx, wd.Date())
	switch {
	case err == nil:
		return fmt.Errorf("workday %s: %w", wd.Date().Format(dateLayout), ErrAlreadyExists)
	case !errors.Is(err, ErrNotFound):
		return fmt.Errorf("checking for existing workday: %w", err)
	}

	if err := r.persistence.Insert(ctx, wd); err != nil {
		return fmt.Errorf("inserting workday: %w", err)
	}
	return nil
}

// Update replaces the stored workday for wd's date, failing with
// ErrNotFound if none exists.
func (r *WorkdayRepository) Update(ctx context.Context, wd *domain.Workday) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.persistence.FindByDay(ctx, wd.Date()); err != nil {
		return err
	}

	if err := r.persistence.Update(ctx, wd); err != nil {
		return fmt.Errorf("updating workday: %w", err)
	}
	return nil
}

// FindByDay returns the stored workday for the given date, or a wrapped
// ErrNotFound.
func (r *WorkdayRepository) FindByDay(ctx context.Context, date time.Time) (*domain.Workday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.persistence.FindByDay(ctx, date)
}

// FindAll returns a snapshot of all stored workdays.
func (r *WorkdayRepository) FindAll(ctx context.Context) ([]*domain.Workday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.persistence.FindAll(ctx)
}
