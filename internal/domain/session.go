package domain

import "time"

// Session is an immutable clock-in/clock-out interval. A nil EndedAt means
// the session is still open. Closing a session is modeled as replacing it
// with a new Session, never as mutating one in place.
type Session struct {
	startedAt time.Time
	endedAt   *time.Time
}

// NewSession creates a session. No consistency validation happens here;
// the Workday aggregate is the validation boundary.
func NewSession(startedAt time.Time, endedAt *time.Time) Session {
	var end *time.Time
	if endedAt != nil {
		e := *endedAt
		end = &e
	}
	return Session{startedAt: startedAt, endedAt: end}
}

// NewClosedSession is shorthand for a session with both endpoints known.
func NewClosedSession(startedAt, endedAt time.Time) Session {
	return NewSession(startedAt, &endedAt)
}

// NewOpenSession is shorthand for a session with no end yet.
func NewOpenSession(startedAt time.Time) Session {
	return NewSession(startedAt, nil)
}

func (s Session) StartedAt() time.Time {
	return s.startedAt
}

// EndedAt returns a copy of the end timestamp, or nil for an open session.
func (s Session) EndedAt() *time.Time {
	if s.endedAt == nil {
		return nil
	}
	e := *s.endedAt
	return &e
}

// Open reports whether the session has no end time yet.
func (s Session) Open() bool {
	return s.endedAt == nil
}

// Before orders sessions by start time. Equal starts are not disambiguated;
// callers that need determinism must use a stable sort.
func (s Session) Before(other Session) bool {
	return s.startedAt.Before(other.startedAt)
}

// InRange reports whether the session's interval intersects [start, end],
// where a nil end (and a nil session end) extends to positive infinity.
func (s Session) InRange(start time.Time, end *time.Time) bool {
	if !start.Before(s.startedAt) {
		// start >= session start: intersects unless the session ended
		// strictly before start.
		if s.endedAt == nil || !start.After(*s.endedAt) {
			return true
		}
	}
	if !start.After(s.startedAt) {
		// start <= session start: intersects unless the range ended
		// strictly before the session began.
		if end == nil || !end.Before(s.startedAt) {
			return true
		}
	}
	return false
}
