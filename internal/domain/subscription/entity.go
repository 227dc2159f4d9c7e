package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending     = errors.New("grant is not pending")
	ErrAlreadyDecided = errors.New("grant has already been decided")
	ErrEmptyPlan      = errors.New("plan cannot be empty")
)

// Grant is the access-gate record for one user. A user holds at most one
// live grant; re-requesting after rejection resets it to pending.
type Grant struct {
	userID    uuid.UUID
	plan      string
	status    Status
	accessKey *string
	reason    *string
	expiresAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewGrant(userID uuid.UUID, plan string) (*Grant, error) {
	if plan == "" {
		return nil, ErrEmptyPlan
	}

	return &Grant{
		userID: userID,
		plan:   plan,
		status: StatusPending,
	}, nil
}

func ReconstructGrant(
	userID uuid.UUID,
	plan string,
	status Status,
	accessKey, reason *string,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Grant {
	return &Grant{
		userID:    userID,
		plan:      plan,
		status:    status,
		accessKey: accessKey,
		reason:    reason,
		expiresAt: expiresAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Approve validates the grant, issues an opaque access key and stamps the
// validity window.
func (g *Grant) Approve(now time.Time, validity time.Duration) error {
	if g.status != StatusPending {
		return ErrNotPending
	}

	key := uuid.NewString()
	expires := now.UTC().Add(validity)
	g.status = StatusValidated
	g.accessKey = &key
	g.expiresAt = &expires
	return nil
}

func (g *Grant) Reject(reason string) error {
	if g.status != StatusPending {
		return ErrNotPending
	}
	g.status = StatusRejected
	g.reason = &reason
	return nil
}

// IsEligibleAt is the gate the reservation store consults on every create.
// Expiry is evaluated against now rather than a persisted transition, so a
// grant that lapsed a second ago already fails here.
func (g *Grant) IsEligibleAt(now time.Time) bool {
	return g.status == StatusValidated && g.expiresAt != nil && g.expiresAt.After(now.UTC())
}

// EffectiveStatusAt mirrors the lazy expiry for read paths.
func (g *Grant) EffectiveStatusAt(now time.Time) Status {
	if g.status == StatusValidated && g.expiresAt != nil && !g.expiresAt.After(now.UTC()) {
		return StatusExpired
	}
	return g.status
}

func (g *Grant) UserID() uuid.UUID     { return g.userID }
func (g *Grant) Plan() string          { return g.plan }
func (g *Grant) Status() Status        { return g.status }
func (g *Grant) AccessKey() *string    { return g.accessKey }
func (g *Grant) Reason() *string       { return g.reason }
func (g *Grant) ExpiresAt() *time.Time { return g.expiresAt }
func (g *Grant) CreatedAt() time.Time  { return g.createdAt }
func (g *Grant) UpdatedAt() time.Time  { return g.updatedAt }
