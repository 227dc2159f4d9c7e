package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotRequested  = errors.New("reservation is not in requested status")
	ErrNotApprovable = errors.New("only requested reservations can be approved")
	ErrTerminalState = errors.New("reservation is already in a terminal state")
	ErrNotOwner      = errors.New("actor is neither the owner nor staff")
)

// Reservation is a time-bounded booking of a single machine. Only approved
// reservations block the machine; requested ones are candidates and may
// overlap each other until one of them wins approval.
type Reservation struct {
	id        uuid.UUID
	machineID uuid.UUID
	userID    uuid.UUID
	window    Window
	status    Status
	purpose   string
	reason    string
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(machineID, userID uuid.UUID, window Window, purpose string, now time.Time) (*Reservation, error) {
	if err := window.ValidateNotPastAt(now); err != nil {
		return nil, err
	}

	return &Reservation{
		id:        uuid.New(),
		machineID: machineID,
		userID:    userID,
		window:    window,
		status:    StatusRequested,
		purpose:   purpose,
	}, nil
}

func ReconstructReservation(
	id, machineID, userID uuid.UUID,
	window Window,
	status Status,
	purpose, reason string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		machineID: machineID,
		userID:    userID,
		window:    window,
		status:    status,
		purpose:   purpose,
		reason:    reason,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Approve transitions requested → approved. The no-overlap check against
// other approved reservations is the store's responsibility and must run
// under the per-machine lock before calling this.
func (r *Reservation) Approve() error {
	if r.status != StatusRequested {
		return ErrNotApprovable
	}
	r.status = StatusApproved
	return nil
}

func (r *Reservation) Reject(reason string) error {
	if r.status != StatusRequested {
		return ErrNotRequested
	}
	r.status = StatusRejected
	r.reason = reason
	return nil
}

// Cancel is allowed for requested and approved reservations. Cancelling an
// approved reservation frees its window immediately.
func (r *Reservation) Cancel() error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// EffectiveStatusAt applies lazy completion: an approved reservation whose
// window has ended reads as completed whether or not the reconcile sweep has
// persisted the transition yet.
func (r *Reservation) EffectiveStatusAt(now time.Time) Status {
	if r.status == StatusApproved && !now.UTC().Before(r.window.End()) {
		return StatusCompleted
	}
	return r.status
}

func (r *Reservation) IsActiveAt(now time.Time) bool {
	return r.status == StatusApproved && r.window.Contains(now)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) MachineID() uuid.UUID { return r.machineID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Window() Window       { return r.window }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Purpose() string      { return r.purpose }
func (r *Reservation) Reason() string       { return r.reason }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
