package domain

import (
	"errors"
	"sort"
	"time"
)

// Workday validation errors. All are caller-recoverable: the input conflicts
// with the aggregate's current state and may be retried with corrected
// parameters.
var (
	ErrOpenSessionExists   = errors.New("an open session already exists")
	ErrOverlappingSessions = errors.New("one or more sessions in range")
	ErrEmptySessions       = errors.New("sessions is empty")
	ErrCurrentSessionEnded = errors.New("the current session already ended")
)

// Workday is the aggregate root for one calendar date's work sessions.
// It exclusively owns its sessions and enforces three invariants on every
// mutation: at most one open session, no overlapping sessions, and sessions
// kept sorted ascending by start time.
type Workday struct {
	date     time.Time
	sessions []Session
}

// NewWorkday creates an empty workday for the given date, truncated to
// UTC midnight.
func NewWorkday(date time.Time) *Workday {
	return &Workday{date: DayOf(date)}
}

// DayOf truncates a timestamp to its UTC calendar date.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func (w *Workday) Date() time.Time {
	return w.date
}

// Sessions returns a copy of the session list in ascending start order.
func (w *Workday) Sessions() []Session {
	out := make([]Session, len(w.sessions))
	copy(out, w.sessions)
	return out
}

// AddSession validates the candidate against the aggregate invariants and,
// on success, appends it and re-sorts the list. On failure the session list
// is unchanged.
//
// Only the last session is inspected for openness: an open session has no
// end, so nothing can sort after it without overlapping it. As long as every
// insert goes through this method, an open session can only ever sit at the
// end of the list, and a full scan would find nothing more.
func (w *Workday) AddSession(s Session) error {
	if n := len(w.sessions); n > 0 {
		if w.sessions[n-1].Open() && s.Open() {
			return ErrOpenSessionExists
		}
	}

	if len(w.SessionsInRange(s.StartedAt(), s.EndedAt())) > 0 {
		return ErrOverlappingSessions
	}

	w.sessions = append(w.sessions, s)
	sort.SliceStable(w.sessions, func(i, j int) bool {
		return w.sessions[i].Before(w.sessions[j])
	})
	return nil
}

// EndCurrentSession closes the open session by replacing it with a closed
// one carrying the same start. The replacement is re-inserted through
// AddSession, so closing runs under the same invariant checks as insertion.
func (w *Workday) EndCurrentSession(endedAt time.Time) error {
	n := len(w.sessions)
	if n == 0 {
		return ErrEmptySessions
	}

	last := w.sessions[n-1]
	if !last.Open() {
		return ErrCurrentSessionEnded
	}

	w.sessions = w.sessions[:n-1]
	if err := w.AddSession(NewClosedSession(last.StartedAt(), endedAt)); err != nil {
		// Restore the popped session so a failed close leaves the
		// aggregate exactly as it was.
		w.sessions = append(w.sessions, last)
		return err
	}
	return nil
}

// SessionsInRange returns every session whose interval intersects
// [start, end], treating a nil end as unbounded. Pure query, no mutation.
func (w *Workday) SessionsInRange(start time.Time, end *time.Time) []Session {
	var out []Session
	for _, s := range w.sessions {
		if s.InRange(start, end) {
			out = append(out, s)
		}
	}
	return out
}

// Clone returns a deep copy. Stores hand out clones so callers can never
// alias the aggregate they own.
func (w *Workday) Clone() *Workday {
	return &Workday{date: w.date, sessions: w.Sessions()}
}
