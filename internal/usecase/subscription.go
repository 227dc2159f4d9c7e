package usecase

import (
	"context"
	"errors"
	"time"

	"fablab-scheduler/internal/domain/subscription"
	"fablab-scheduler/internal/infra"
	"fablab-scheduler/internal/infra/db"
	"fablab-scheduler/internal/pkg/clock"
	"fablab-scheduler/internal/pkg/errs"
	"fablab-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrGrantNotFound      = errors.New("subscription grant not found")
	ErrGrantNotPending    = errors.New("subscription grant is not pending")
	ErrGrantAlreadyActive = errors.New("subscription grant is already active")
	ErrInvalidPlan        = errors.New("invalid subscription plan")
)

type SubscriptionRepository interface {
	FindByUserID(ctx context.Context, tx db.DBTX, userID uuid.UUID, forUpdate bool) (*subscription.Grant, error)
	Upsert(ctx context.Context, tx db.DBTX, g *subscription.Grant) error
}

type SubscriptionUseCase interface {
	Request(ctx context.Context, userID uuid.UUID, plan string) (*readmodel.GrantRM, error)
	Approve(ctx context.Context, userID uuid.UUID) (*readmodel.GrantRM, error)
	Reject(ctx context.Context, userID uuid.UUID, reason string) (*readmodel.GrantRM, error)
	Me(ctx context.Context, userID uuid.UUID) (*readmodel.GrantRM, error)
}

type subscriptionUseCaseImpl struct {
	subscriptionRepo SubscriptionRepository
	db               *pgxpool.Pool
	clock            clock.Clock
	validity         time.Duration
}

func NewSubscriptionUseCase(
	subscriptionRepo SubscriptionRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
	validity time.Duration,
) SubscriptionUseCase {
	return &subscriptionUseCaseImpl{
		subscriptionRepo: subscriptionRepo,
		db:               db,
		clock:            clock,
		validity:         validity,
	}
}

// Request files a pending grant for the user. Re-requests after rejection or
// expiry overwrite the old row; a pending request is returned as-is, and a
// still-valid grant cannot be re-requested.
func (u *subscriptionUseCaseImpl) Request(ctx context.Context, userID uuid.UUID, plan string) (*readmodel.GrantRM, error) {
	now := u.clock.Now()

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer rollback(ctx, tx)

	existing, err := u.subscriptionRepo.FindByUserID(ctx, tx, userID, true)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, mapStoreErr(err)
	}
	if existing != nil {
		switch existing.EffectiveStatusAt(now) {
		case subscription.StatusPending:
			if err := tx.Commit(ctx); err != nil {
				return nil, errs.Mark(err, ErrStoreUnavailable)
			}
			return toGrantRM(existing, now), nil
		case subscription.StatusValidated:
			return nil, ErrGrantAlreadyActive
		}
	}

	grant, err := subscription.NewGrant(userID, plan)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlan)
	}

	if err := u.subscriptionRepo.Upsert(ctx, tx, grant); err != nil {
		return nil, mapStoreErr(err)
	}

	stored, err := u.subscriptionRepo.FindByUserID(ctx, tx, userID, false)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return toGrantRM(stored, now), nil
}

// Approve validates the pending grant, issuing the access key and stamping
// the validity window from now.
func (u *subscriptionUseCaseImpl) Approve(ctx context.Context, userID uuid.UUID) (*readmodel.GrantRM, error) {
	return u.decide(ctx, userID, func(g *subscription.Grant, now time.Time) error {
		return g.Approve(now, u.validity)
	})
}

func (u *subscriptionUseCaseImpl) Reject(ctx context.Context, userID uuid.UUID, reason string) (*readmodel.GrantRM, error) {
	return u.decide(ctx, userID, func(g *subscription.Grant, _ time.Time) error {
		return g.Reject(reason)
	})
}

func (u *subscriptionUseCaseImpl) decide(ctx context.Context, userID uuid.UUID, apply func(*subscription.Grant, time.Time) error) (*readmodel.GrantRM, error) {
	now := u.clock.Now()

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer rollback(ctx, tx)

	grant, err := u.subscriptionRepo.FindByUserID(ctx, tx, userID, true)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGrantNotFound
		}
		return nil, mapStoreErr(err)
	}

	if err := apply(grant, now); err != nil {
		return nil, errs.Mark(err, ErrGrantNotPending)
	}

	if err := u.subscriptionRepo.Upsert(ctx, tx, grant); err != nil {
		return nil, mapStoreErr(err)
	}

	stored, err := u.subscriptionRepo.FindByUserID(ctx, tx, userID, false)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return toGrantRM(stored, now), nil
}

func (u *subscriptionUseCaseImpl) Me(ctx context.Context, userID uuid.UUID) (*readmodel.GrantRM, error) {
	grant, err := u.subscriptionRepo.FindByUserID(ctx, u.db, userID, false)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGrantNotFound
		}
		return nil, mapStoreErr(err)
	}
	return toGrantRM(grant, u.clock.Now()), nil
}

// toGrantRM reports the lazily-expired status so callers never see a
// validated grant past its expiry.
func toGrantRM(g *subscription.Grant, now time.Time) *readmodel.GrantRM {
	return &readmodel.GrantRM{
		UserID:    g.UserID(),
		Plan:      g.Plan(),
		Status:    g.EffectiveStatusAt(now).String(),
		AccessKey: g.AccessKey(),
		Reason:    g.Reason(),
		ExpiresAt: g.ExpiresAt(),
		CreatedAt: g.CreatedAt(),
		UpdatedAt: g.UpdatedAt(),
	}
}
