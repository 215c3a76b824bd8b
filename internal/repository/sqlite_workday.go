package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/workclock/internal/db"
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/google/uuid"
)

// SQLitePersistence implements WorkdayPersistence on SQLite. A workday
// spans two tables (workdays + work_sessions), so mutations run inside a
// unit of work.
type SQLitePersistence struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLitePersistence creates a SQLite-backed store on the given database.
func NewSQLitePersistence(database *sql.DB) *SQLitePersistence {
	return &SQLitePersistence{
		db:  database,
		uow: db.NewSQLiteUnitOfWork(database),
	}
}

func (p *SQLitePersistence) Insert(ctx context.Context, wd *domain.Workday) error {
	return p.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO workdays (date, created_at) VALUES (?, ?)`,
			wd.Date().Format(dateLayout), nowUTC(),
		)
		if err != nil {
			return fmt.Errorf("inserting workday row: %w", err)
		}
		return insertSessions(ctx, tx, wd)
	})
}

func (p *SQLitePersistence) Update(ctx context.Context, wd *domain.Workday) error {
	return p.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var exists int
		row := tx.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM workdays WHERE date = ?`,
			wd.Date().Format(dateLayout),
		)
		if err := row.Scan(&exists); err != nil {
			return fmt.Errorf("checking workday row: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("workday %s: %w", wd.Date().Format(dateLayout), ErrNotFound)
		}

		_, err := tx.ExecContext(ctx,
			`DELETE FROM work_sessions WHERE workday_date = ?`,
			wd.Date().Format(dateLayout),
		)
		if err != nil {
			return fmt.Errorf("clearing workday sessions: %w", err)
		}

		return insertSessions(ctx, tx, wd)
	})
}

func (p *SQLitePersistence) FindByDay(ctx context.Context, date time.Time) (*domain.Workday, error) {
	day := domain.DayOf(date)

	var dateStr string
	row := p.db.QueryRowContext(ctx,
		`SELECT date FROM workdays WHERE date = ?`, day.Format(dateLayout))
	if err := row.Scan(&dateStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workday %s: %w", day.Format(dateLayout), ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workday row: %w", err)
	}

	sessions, err := p.loadSessions(ctx, dateStr)
	if err != nil {
		return nil, err
	}
	return restoreWorkday(day, sessions)
}

func (p *SQLitePersistence) FindAll(ctx context.Context) ([]*domain.Workday, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT date FROM workdays ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("listing workdays: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning workday date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workdays: %w", err)
	}

	out := make([]*domain.Workday, 0, len(dates))
	for _, d := range dates {
		date, err := time.Parse(dateLayout, d)
		if err != nil {
			return nil, fmt.Errorf("parsing workday date %q: %w", d, err)
		}
		sessions, err := p.loadSessions(ctx, d)
		if err != nil {
			return nil, err
		}
		wd, err := restoreWorkday(date, sessions)
		if err != nil {
			return nil, err
		}
		out = append(out, wd)
	}
	return out, nil
}

func (p *SQLitePersistence) loadSessions(ctx context.Context, dateStr string) ([]domain.Session, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT started_at, ended_at FROM work_sessions
		 WHERE workday_date = ? ORDER BY started_at`, dateStr)
	if err != nil {
		return nil, fmt.Errorf("listing workday sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var startedStr string
		var endedStr sql.NullString
		if err := rows.Scan(&startedStr, &endedStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		started, err := time.Parse(time.RFC3339, startedStr)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at: %w", err)
		}
		sessions = append(sessions, domain.NewSession(started, parseNullableTime(endedStr, time.RFC3339)))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func insertSessions(ctx context.Context, tx db.DBTX, wd *domain.Workday) error {
	for _, s := range wd.Sessions() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO work_sessions (id, workday_date, started_at, ended_at)
			 VALUES (?, ?, ?, ?)`,
			uuid.New().String(),
			wd.Date().Format(dateLayout),
			s.StartedAt().UTC().Format(time.RFC3339),
			nullableTimeToString(s.EndedAt(), time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting session row: %w", err)
		}
	}
	return nil
}
