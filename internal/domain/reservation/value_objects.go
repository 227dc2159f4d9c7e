package reservation

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidWindow = errors.New("window start must be before end")
	ErrWindowInPast  = errors.New("window start cannot be in the past")
)

// Window is a half-open interval [start, end). Instants are normalized to
// UTC; windows that merely touch at an endpoint do not overlap.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	start = start.UTC()
	end = end.UTC()
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}

	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

func (w Window) Contains(now time.Time) bool {
	now = now.UTC()
	return !now.Before(w.start) && now.Before(w.end)
}

// ElapsedFraction reports how much of the window has passed at now,
// clamped to [0, 1].
func (w Window) ElapsedFraction(now time.Time) float64 {
	now = now.UTC()
	if !now.After(w.start) {
		return 0
	}
	if !now.Before(w.end) {
		return 1
	}
	return float64(now.Sub(w.start)) / float64(w.Duration())
}

// RemainingMinutes is ceil(end-now) in minutes, clamped to 0 once the
// window has ended. A reservation with one second left still reports 1.
func (w Window) RemainingMinutes(now time.Time) int {
	now = now.UTC()
	remaining := w.end.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Minutes()))
}

// ValidateNotPastAt rejects windows that start before now. Used at creation
// time only; existing reservations keep their windows as history.
func (w Window) ValidateNotPastAt(now time.Time) error {
	if w.start.Before(now.UTC()) {
		return ErrWindowInPast
	}
	return nil
}

// ToTstzrange renders the window as a PostgreSQL half-open range literal.
func (w Window) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
