package machine

import (
	"time"

	"fablab-scheduler/internal/domain/reservation"

	"github.com/google/uuid"
)

// State is the closed set of operational states a machine can report.
type State string

const (
	StateAvailable   State = "available"
	StateInUse       State = "in_use"
	StateMaintenance State = "maintenance"
	StateBroken      State = "broken"
	StateUnavailable State = "unavailable"
)

func (s State) String() string {
	return string(s)
}

// ActiveReservation is the slice of a reservation the derivation needs:
// identity plus its window. It is always an approved reservation.
type ActiveReservation struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Window reservation.Window
}

// DerivedStatus is computed on demand and never persisted.
type DerivedStatus struct {
	MachineID          uuid.UUID
	State              State
	CurrentReservation *ActiveReservation
	AvailableInMinutes *int
}

// DeriveStatus computes the machine's state at now. Precedence is fixed:
// broken > maintenance > unavailable(retired) > in_use > available. A broken
// machine reports broken even while an approved reservation covers now.
//
// current is the machine's current-or-next approved reservation; it counts
// as in-use only if its window contains now.
func DeriveStatus(m *Machine, current *ActiveReservation, now time.Time) DerivedStatus {
	status := DerivedStatus{MachineID: m.ID()}

	switch {
	case m.Broken():
		status.State = StateBroken
	case m.Maintenance():
		status.State = StateMaintenance
	case m.Retired():
		status.State = StateUnavailable
	case current != nil && current.Window.Contains(now):
		remaining := current.Window.RemainingMinutes(now)
		status.State = StateInUse
		status.CurrentReservation = current
		status.AvailableInMinutes = &remaining
	default:
		status.State = StateAvailable
	}

	return status
}
