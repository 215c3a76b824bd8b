package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// InMemoryPersistence keeps workdays in a plain slice. Aggregates are
// cloned on the way in and out so callers never alias stored state. Not
// safe for concurrent use on its own; WorkdayRepository serializes access.
type InMemoryPersistence struct {
	workdays []*domain.Workday
}

func NewInMemoryPersistence() *InMemoryPersistence {
	return &InMemoryPersistence{}
}

func (p *InMemoryPersistence) Insert(_ context.Context, wd *domain.Workday) error {
	p.workdays = append(p.workdays, wd.Clone())
	return nil
}

func (p *InMemoryPersistence) Update(_ context.Context, wd *domain.Workday) error {
	for i, stored := range p.workdays {
		if stored.Date().Equal(wd.Date()) {
			p.workdays[i] = wd.Clone()
			return nil
		}
	}
	return fmt.Errorf("workday %s: %w", wd.Date().Format(dateLayout), ErrNotFound)
}

func (p *InMemoryPersistence) FindByDay(_ context.Context, date time.Time) (*domain.Workday, error) {
	day := domain.DayOf(date)
	for _, stored := range p.workdays {
		if stored.Date().Equal(day) {
			return stored.Clone(), nil
		}
	}
	return nil, fmt.Errorf("workday %s: %w", day.Format(dateLayout), ErrNotFound)
}

func (p *InMemoryPersistence) FindAll(_ context.Context) ([]*domain.Workday, error) {
	out := make([]*domain.Workday, 0, len(p.workdays))
	for _, stored := range p.workdays {
		out = append(out, stored.Clone())
	}
	return out, nil
}
