package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// ClockTime formats a timestamp as HH:MM, or "—" for a nil (open) end.
func ClockTime(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.UTC().Format("15:04")
}

// Duration renders a session length as "3h45m"; an open session renders
// as "running".
func Duration(s domain.Session) string {
	end := s.EndedAt()
	if end == nil {
		return StyleYellow.Render("running")
	}
	d := end.Sub(s.StartedAt()).Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// WorkdayTotal sums the closed session lengths of a workday.
func WorkdayTotal(wd *domain.Workday) string {
	var total time.Duration
	open := false
	for _, s := range wd.Sessions() {
		if end := s.EndedAt(); end != nil {
			total += end.Sub(s.StartedAt())
		} else {
			open = true
		}
	}
	out := fmt.Sprintf("%dh%02dm", int(total.Hours()), int(total.Minutes())%60)
	if open {
		out += StyleDim.Render(" +open")
	}
	return out
}

// SessionSummary renders a compact one-line session list for a workday,
// e.g. "08:00-09:30, 10:31-…".
func SessionSummary(wd *domain.Workday) string {
	parts := make([]string, 0, len(wd.Sessions()))
	for _, s := range wd.Sessions() {
		end := "…"
		if e := s.EndedAt(); e != nil {
			end = e.UTC().Format("15:04")
		}
		parts = append(parts, s.StartedAt().UTC().Format("15:04")+"-"+end)
	}
	if len(parts) == 0 {
		return StyleDim.Render("no sessions")
	}
	return strings.Join(parts, ", ")
}
