package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/repository"
	"github.com/alexanderramin/workclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) WorkdayService {
	t.Helper()
	store := repository.NewSQLitePersistence(testutil.NewTestDB(t))
	return NewWorkdayService(repository.NewWorkdayRepository(store))
}

func TestCreate_ThenListAll(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testutil.Day(2014, 7, 1)))
	require.NoError(t, svc.Create(ctx, testutil.Day(2014, 7, 2)))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, testutil.Day(2014, 7, 1), all[0].Date())
	assert.Equal(t, testutil.Day(2014, 7, 2), all[1].Date())
}

func TestCreate_DuplicateDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testutil.Day(2014, 7, 1)))
	err := svc.Create(ctx, testutil.Day(2014, 7, 1))
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestClockIn_CreatesWorkday(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	day := testutil.Day(2022, 7, 1)

	require.NoError(t, svc.ClockIn(ctx, testutil.At(day, 8, 0)))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	sessions := all[0].Sessions()
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].Open())
}

func TestClockIn_TwiceFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	day := testutil.Day(2022, 7, 1)

	require.NoError(t, svc.ClockIn(ctx, testutil.At(day, 8, 0)))
	err := svc.ClockIn(ctx, testutil.At(day, 9, 0))
	assert.ErrorIs(t, err, domain.ErrOpenSessionExists)
}

func TestClockInOut_FullDay(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	day := testutil.Day(2022, 7, 1)

	require.NoError(t, svc.ClockIn(ctx, testutil.At(day, 8, 0)))
	require.NoError(t, svc.ClockOut(ctx, testutil.At(day, 9, 30)))
	require.NoError(t, svc.ClockIn(ctx, testutil.At(day, 10, 31)))
	require.NoError(t, svc.ClockOut(ctx, testutil.At(day, 12, 30)))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	sessions := all[0].Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, testutil.At(day, 8, 0), sessions[0].StartedAt())
	assert.Equal(t, testutil.At(day, 10, 31), sessions[1].StartedAt())
	for _, s := range sessions {
		assert.False(t, s.Open())
	}
}

func TestClockOut_WithoutWorkday(t *testing.T) {
	svc := newTestService(t)

	err := svc.ClockOut(context.Background(), testutil.At(testutil.Day(2022, 7, 1), 17, 0))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClockOut_TwiceFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	day := testutil.Day(2022, 7, 1)

	require.NoError(t, svc.ClockIn(ctx, testutil.At(day, 8, 0)))
	require.NoError(t, svc.ClockOut(ctx, testutil.At(day, 9, 0)))

	err := svc.ClockOut(ctx, testutil.At(day, 10, 0))
	assert.ErrorIs(t, err, domain.ErrCurrentSessionEnded)
}

func TestClockOut_EmptyWorkday(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	day := testutil.Day(2022, 7, 1)

	require.NoError(t, svc.Create(ctx, day))

	err := svc.ClockOut(ctx, testutil.At(day, 17, 0))
	assert.ErrorIs(t, err, domain.ErrEmptySessions)
}

func TestSessionsInRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	day := testutil.Day(2022, 7, 1)

	require.NoError(t, svc.ClockIn(ctx, testutil.At(day, 8, 0)))
	require.NoError(t, svc.ClockOut(ctx, testutil.At(day, 9, 30)))
	require.NoError(t, svc.ClockIn(ctx, testutil.At(day, 10, 31)))
	require.NoError(t, svc.ClockOut(ctx, testutil.At(day, 12, 30)))
	require.NoError(t, svc.ClockIn(ctx, testutil.At(day, 13, 30)))
	require.NoError(t, svc.ClockOut(ctx, testutil.At(day, 18, 0)))

	end := testutil.At(day, 17, 0)
	got, err := svc.SessionsInRange(ctx, day, testutil.At(day, 10, 40), &end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, testutil.At(day, 10, 31), got[0].StartedAt())
	assert.Equal(t, testutil.At(day, 13, 30), got[1].StartedAt())
}
