package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2022, 7, 1, hour, min, 0, 0, time.UTC)
}

func atp(hour, min int) *time.Time {
	t := at(hour, min)
	return &t
}

func TestNewSession_CopiesEnd(t *testing.T) {
	end := at(12, 0)
	s := NewSession(at(8, 0), &end)

	end = at(23, 0)
	require.NotNil(t, s.EndedAt())
	assert.Equal(t, at(12, 0), *s.EndedAt(), "session must not alias the caller's pointer")
}

func TestSession_Open(t *testing.T) {
	assert.True(t, NewOpenSession(at(8, 0)).Open())
	assert.False(t, NewClosedSession(at(8, 0), at(9, 0)).Open())
}

func TestSession_Before(t *testing.T) {
	a := NewClosedSession(at(8, 0), at(9, 0))
	b := NewOpenSession(at(10, 0))
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a), "ordering is strict")
}

func TestSession_InRange(t *testing.T) {
	closed := NewClosedSession(at(8, 0), at(9, 30))
	open := NewOpenSession(at(9, 31))

	cases := []struct {
		name    string
		session Session
		start   time.Time
		end     *time.Time
		want    bool
	}{
		{"range starts inside closed session", closed, at(9, 0), atp(12, 0), true},
		{"range ends exactly at session start", closed, at(7, 0), atp(8, 0), true},
		{"range entirely before", closed, at(6, 0), atp(7, 59), false},
		{"range entirely after", closed, at(9, 31), atp(10, 0), false},
		{"range start exactly at session end", closed, at(9, 30), atp(10, 0), true},
		{"open-ended range spans session", closed, at(7, 0), nil, true},
		{"open-ended range after closed session", closed, at(10, 0), nil, false},
		{"range starts after open session start", open, at(12, 0), atp(13, 0), true},
		{"range before open session start", open, at(9, 0), atp(9, 30), false},
		{"open range vs open session", open, at(9, 0), nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.session.InRange(tc.start, tc.end))
		})
	}
}
