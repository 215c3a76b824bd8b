package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// FilePersistence stores workdays in a flat text file, one workday per
// line: date, then the session list.
//
//	2022-07-01|2022-07-01T08:00:00Z,2022-07-01T09:30:00Z;2022-07-01T09:31:00Z,-
//
// "-" marks an open session. Every mutation rewrites the whole file; the
// dataset is a person's workday log, small by construction.
type FilePersistence struct {
	path string
}

func NewFilePersistence(path string) *FilePersistence {
	return &FilePersistence{path: path}
}

func (p *FilePersistence) Insert(ctx context.Context, wd *domain.Workday) error {
	all, err := p.load()
	if err != nil {
		return err
	}
	all = append(all, wd.Clone())
	return p.save(all)
}

func (p *FilePersistence) Update(ctx context.Context, wd *domain.Workday) error {
	all, err := p.load()
	if err != nil {
		return err
	}
	for i, stored := range all {
		if stored.Date().Equal(wd.Date()) {
			all[i] = wd.Clone()
			return p.save(all)
		}
	}
	return fmt.Errorf("workday %s: %w", wd.Date().Format(dateLayout), ErrNotFound)
}

func (p *FilePersistence) FindByDay(ctx context.Context, date time.Time) (*domain.Workday, error) {
	all, err := p.load()
	if err != nil {
		return nil, err
	}
	day := domain.DayOf(date)
	for _, stored := range all {
		if stored.Date().Equal(day) {
			return stored, nil
		}
	}
	return nil, fmt.Errorf("workday %s: %w", day.Format(dateLayout), ErrNotFound)
}

func (p *FilePersistence) FindAll(ctx context.Context) ([]*domain.Workday, error) {
	return p.load()
}

func (p *FilePersistence) load() ([]*domain.Workday, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading workday file: %w", err)
	}

	var out []*domain.Workday
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		wd, err := parseWorkdayLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, wd)
	}
	return out, nil
}

func (p *FilePersistence) save(all []*domain.Workday) error {
	var b strings.Builder
	for _, wd := range all {
		b.WriteString(formatWorkdayLine(wd))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(p.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing workday file: %w", err)
	}
	return nil
}

func formatWorkdayLine(wd *domain.Workday) string {
	parts := make([]string, 0, len(wd.Sessions()))
	for _, s := range wd.Sessions() {
		end := "-"
		if e := s.EndedAt(); e != nil {
			end = e.UTC().Format(time.RFC3339)
		}
		parts = append(parts, s.StartedAt().UTC().Format(time.RFC3339)+","+end)
	}
	return wd.Date().Format(dateLayout) + "|" + strings.Join(parts, ";")
}

func parseWorkdayLine(line string) (*domain.Workday, error) {
	dateStr, sessionsStr, _ := strings.Cut(line, "|")
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing workday date %q: %w", dateStr, err)
	}

	var sessions []domain.Session
	for _, part := range strings.Split(sessionsStr, ";") {
		if part == "" {
			continue
		}
		startStr, endStr, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("malformed session %q on %s", part, dateStr)
		}
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing session start %q: %w", startStr, err)
		}
		var end *time.Time
		if endStr != "-" {
			e, err := time.Parse(time.RFC3339, endStr)
			if err != nil {
				return nil, fmt.Errorf("parsing session end %q: %w", endStr, err)
			}
			end = &e
		}
		sessions = append(sessions, domain.NewSession(start, end))
	}

	return restoreWorkday(date, sessions)
}
