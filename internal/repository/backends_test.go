package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBackends builds one of each WorkdayPersistence implementation so the
// same contract assertions run against all of them.
func newBackends(t *testing.T) map[string]WorkdayPersistence {
	t.Helper()
	return map[string]WorkdayPersistence{
		"memory": NewInMemoryPersistence(),
		"file":   NewFilePersistence(filepath.Join(t.TempDir(), "workdays.txt")),
		"sqlite": NewSQLitePersistence(testutil.NewTestDB(t)),
	}
}

func TestBackends_InsertAndFindByDay(t *testing.T) {
	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			wd := testutil.NewTestWorkday(t, testutil.Day(2022, 7, 1),
				testutil.WithClosedSession(8, 0, 9, 30),
				testutil.WithOpenSession(9, 31))
			require.NoError(t, store.Insert(ctx, wd))

			got, err := store.FindByDay(ctx, testutil.Day(2022, 7, 1))
			require.NoError(t, err)
			assert.Equal(t, wd.Date(), got.Date())

			sessions := got.Sessions()
			require.Len(t, sessions, 2)
			assert.Equal(t, testutil.At(wd.Date(), 8, 0), sessions[0].StartedAt())
			require.NotNil(t, sessions[0].EndedAt())
			assert.Equal(t, testutil.At(wd.Date(), 9, 30), *sessions[0].EndedAt())
			assert.True(t, sessions[1].Open())
		})
	}
}

func TestBackends_FindByDay_NotFound(t *testing.T) {
	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.FindByDay(context.Background(), testutil.Day(2022, 7, 1))
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestBackends_Update(t *testing.T) {
	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			wd := testutil.NewTestWorkday(t, testutil.Day(2022, 7, 1),
				testutil.WithOpenSession(8, 0))
			require.NoError(t, store.Insert(ctx, wd))

			require.NoError(t, wd.EndCurrentSession(testutil.At(wd.Date(), 12, 0)))
			require.NoError(t, store.Update(ctx, wd))

			got, err := store.FindByDay(ctx, testutil.Day(2022, 7, 1))
			require.NoError(t, err)
			require.Len(t, got.Sessions(), 1)
			assert.False(t, got.Sessions()[0].Open())
		})
	}
}

func TestBackends_Update_NotFound(t *testing.T) {
	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Update(context.Background(),
				testutil.NewTestWorkday(t, testutil.Day(2022, 7, 1)))
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestBackends_FindAll(t *testing.T) {
	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Insert(ctx,
				testutil.NewTestWorkday(t, testutil.Day(2022, 7, 1),
					testutil.WithClosedSession(8, 0, 12, 0))))
			require.NoError(t, store.Insert(ctx,
				testutil.NewTestWorkday(t, testutil.Day(2022, 7, 2))))

			all, err := store.FindAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2)
		})
	}
}

func TestBackends_SnapshotIsolation(t *testing.T) {
	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			wd := testutil.NewTestWorkday(t, testutil.Day(2022, 7, 1),
				testutil.WithClosedSession(8, 0, 9, 0))
			require.NoError(t, store.Insert(ctx, wd))

			// Mutating a fetched aggregate must not leak into the store
			// until Update is called.
			got, err := store.FindByDay(ctx, testutil.Day(2022, 7, 1))
			require.NoError(t, err)
			require.NoError(t, got.AddSession(
				domain.NewClosedSession(testutil.At(wd.Date(), 10, 0), testutil.At(wd.Date(), 11, 0))))

			again, err := store.FindByDay(ctx, testutil.Day(2022, 7, 1))
			require.NoError(t, err)
			assert.Len(t, again.Sessions(), 1)
		})
	}
}
