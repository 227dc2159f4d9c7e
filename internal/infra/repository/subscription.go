package repository

import (
	"context"
	"errors"
	"time"

	"fablab-scheduler/internal/domain/subscription"
	"fablab-scheduler/internal/infra"
	"fablab-scheduler/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

func (r *SubscriptionRepository) FindByUserID(ctx context.Context, tx db.DBTX, userID uuid.UUID, forUpdate bool) (*subscription.Grant, error) {
	query := `SELECT user_id, plan, status, access_key, reason, expires_at, created_at, updated_at
	          FROM subscription_grants WHERE user_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	row := tx.QueryRow(ctx, query, userID)

	var (
		uid                  uuid.UUID
		plan, status         string
		accessKey, reason    *string
		expiresAt            *time.Time
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&uid, &plan, &status, &accessKey, &reason, &expiresAt, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("subscription grant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscription grant", err)
	}

	return subscription.ReconstructGrant(
		uid, plan, subscription.Status(status),
		accessKey, reason, expiresAt,
		createdAt, updatedAt,
	), nil
}

// Upsert writes the grant; one row per user, re-requests overwrite the
// previous decision.
func (r *SubscriptionRepository) Upsert(ctx context.Context, tx db.DBTX, g *subscription.Grant) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO subscription_grants (user_id, plan, status, access_key, reason, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE
		 SET plan = EXCLUDED.plan,
		     status = EXCLUDED.status,
		     access_key = EXCLUDED.access_key,
		     reason = EXCLUDED.reason,
		     expires_at = EXCLUDED.expires_at,
		     updated_at = now()`,
		g.UserID(), g.Plan(), g.Status().String(), g.AccessKey(), g.Reason(), g.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert subscription grant", err)
	}
	return nil
}
