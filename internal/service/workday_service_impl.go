package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/repository"
)

type workdayService struct {
	workdays *repository.WorkdayRepository
}

func NewWorkdayService(workdays *repository.WorkdayRepository) WorkdayService {
	return &workdayService{workdays: workdays}
}

func (s *workdayService) Create(ctx context.Context, date time.Time) error {
	return s.workdays.Create(ctx, domain.NewWorkday(date))
}

func (s *workdayService) ClockIn(ctx context.Context, at time.Time) error {
	wd, err := s.workdays.FindByDay(ctx, at)
	if errors.Is(err, repository.ErrNotFound) {
		wd = domain.NewWorkday(at)
		if err := wd.AddSession(domain.NewOpenSession(at)); err != nil {
			return err
		}
		return s.workdays.Create(ctx, wd)
	}
	if err != nil {
		return err
	}

	if err := wd.AddSession(domain.NewOpenSession(at)); err != nil {
		return err
	}
	return s.workdays.Update(ctx, wd)
}

func (s *workdayService) ClockOut(ctx context.Context, at time.Time) error {
	wd, err := s.workdays.FindByDay(ctx, at)
	if err != nil {
		return err
	}

	if err := wd.EndCurrentSession(at); err != nil {
		return err
	}
	return s.workdays.Update(ctx, wd)
}

func (s *workdayService) ListAll(ctx context.Context) ([]*domain.Workday, error) {
	return s.workdays.FindAll(ctx)
}

func (s *workdayService) SessionsInRange(ctx context.Context, date time.Time, start time.Time, end *time.Time) ([]domain.Session, error) {
	wd, err := s.workdays.FindByDay(ctx, date)
	if err != nil {
		return nil, err
	}
	return wd.SessionsInRange(start, end), nil
}
