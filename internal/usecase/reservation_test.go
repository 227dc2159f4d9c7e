//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fablab-scheduler/internal/domain/reservation"
	"fablab-scheduler/internal/domain/subscription"
	"fablab-scheduler/internal/infra"
	"fablab-scheduler/internal/pkg/clock"
	"fablab-scheduler/internal/usecase"
	"fablab-scheduler/internal/usecase/readmodel"
	"fablab-scheduler/tests/mock/repomock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type reservationUseCaseMocks struct {
	reservationRepo  *repomock.MockReservationRepository
	machineRepo      *repomock.MockMachineRepository
	subscriptionRepo *repomock.MockSubscriptionRepository
	clock            *clock.MockClock
}

// The pool stays nil: these tests only exercise paths that never open a
// transaction, so the pool is handed to mocked repositories untouched.
func newReservationUseCase(t *testing.T) (usecase.ReservationUseCase, reservationUseCaseMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := reservationUseCaseMocks{
		reservationRepo:  repomock.NewMockReservationRepository(ctrl),
		machineRepo:      repomock.NewMockMachineRepository(ctrl),
		subscriptionRepo: repomock.NewMockSubscriptionRepository(ctrl),
		clock:            clock.NewMockClock(testNow),
	}

	uc := usecase.NewReservationUseCase(m.reservationRepo, m.machineRepo, m.subscriptionRepo, nil, m.clock)
	return uc, m
}

func validatedGrant(userID uuid.UUID, expiresAt time.Time) *subscription.Grant {
	key := uuid.NewString()
	return subscription.ReconstructGrant(
		userID, "monthly", subscription.StatusValidated,
		&key, nil, &expiresAt,
		testNow.Add(-time.Hour), testNow.Add(-time.Hour),
	)
}

func TestReservationCreate_Eligibility(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	params := usecase.CreateReservationParams{
		MachineID: uuid.New(),
		UserID:    userID,
		StartTime: testNow.Add(time.Hour),
		EndTime:   testNow.Add(2 * time.Hour),
	}

	t.Run("no grant on file", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.subscriptionRepo.EXPECT().FindByUserID(gomock.Any(), gomock.Any(), userID, false).
			Return(nil, infra.WrapRepoErr("grant not found", nil, infra.KindNotFound))

		_, err := uc.Create(ctx, params)
		assert.ErrorIs(t, err, usecase.ErrNotEligible)
	})

	t.Run("grant expired a second ago", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.subscriptionRepo.EXPECT().FindByUserID(gomock.Any(), gomock.Any(), userID, false).
			Return(validatedGrant(userID, testNow.Add(-time.Second)), nil)

		_, err := uc.Create(ctx, params)
		assert.ErrorIs(t, err, usecase.ErrNotEligible)
	})

	t.Run("pending grant does not qualify", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		pending := subscription.ReconstructGrant(
			userID, "monthly", subscription.StatusPending,
			nil, nil, nil, testNow, testNow,
		)
		m.subscriptionRepo.EXPECT().FindByUserID(gomock.Any(), gomock.Any(), userID, false).
			Return(pending, nil)

		_, err := uc.Create(ctx, params)
		assert.ErrorIs(t, err, usecase.ErrNotEligible)
	})

	t.Run("store failure surfaces as unavailable", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.subscriptionRepo.EXPECT().FindByUserID(gomock.Any(), gomock.Any(), userID, false).
			Return(nil, infra.WrapRepoErr("connection reset", errors.New("broken pipe"), infra.KindDBFailure))

		_, err := uc.Create(ctx, params)
		assert.ErrorIs(t, err, usecase.ErrStoreUnavailable)
	})
}

func TestReservationCreate_WindowValidation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	eligible := func(m reservationUseCaseMocks) {
		m.subscriptionRepo.EXPECT().FindByUserID(gomock.Any(), gomock.Any(), userID, false).
			Return(validatedGrant(userID, testNow.Add(time.Hour)), nil)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{name: "inverted window", start: testNow.Add(2 * time.Hour), end: testNow.Add(time.Hour)},
		{name: "zero-length window", start: testNow.Add(time.Hour), end: testNow.Add(time.Hour)},
		{name: "window in the past", start: testNow.Add(-2 * time.Hour), end: testNow.Add(-time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newReservationUseCase(t)
			eligible(m)

			_, err := uc.Create(ctx, usecase.CreateReservationParams{
				MachineID: uuid.New(),
				UserID:    userID,
				StartTime: tt.start,
				EndTime:   tt.end,
			})
			assert.ErrorIs(t, err, usecase.ErrInvalidWindow)
		})
	}
}

func TestReservationGet(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	t.Run("approved reservation past its end reads completed", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.reservationRepo.EXPECT().FindRMByID(gomock.Any(), gomock.Any(), reservationID).
			Return(&readmodel.ReservationRM{
				ID:       reservationID,
				StartsAt: testNow.Add(-2 * time.Hour),
				EndsAt:   testNow.Add(-time.Hour),
				Status:   reservation.StatusApproved.String(),
			}, nil)

		rm, err := uc.Get(ctx, reservationID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCompleted.String(), rm.Status)
	})

	t.Run("approved reservation still running reads approved", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.reservationRepo.EXPECT().FindRMByID(gomock.Any(), gomock.Any(), reservationID).
			Return(&readmodel.ReservationRM{
				ID:       reservationID,
				StartsAt: testNow.Add(-time.Hour),
				EndsAt:   testNow.Add(time.Hour),
				Status:   reservation.StatusApproved.String(),
			}, nil)

		rm, err := uc.Get(ctx, reservationID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusApproved.String(), rm.Status)
	})

	t.Run("requested reservation past its end is untouched", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.reservationRepo.EXPECT().FindRMByID(gomock.Any(), gomock.Any(), reservationID).
			Return(&readmodel.ReservationRM{
				ID:       reservationID,
				StartsAt: testNow.Add(-2 * time.Hour),
				EndsAt:   testNow.Add(-time.Hour),
				Status:   reservation.StatusRequested.String(),
			}, nil)

		rm, err := uc.Get(ctx, reservationID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusRequested.String(), rm.Status)
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.reservationRepo.EXPECT().FindRMByID(gomock.Any(), gomock.Any(), reservationID).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := uc.Get(ctx, reservationID)
		assert.ErrorIs(t, err, usecase.ErrReservationNotFound)
	})
}

func TestReservationListForMachine(t *testing.T) {
	ctx := context.Background()
	machineID := uuid.New()
	from := testNow.Add(-24 * time.Hour)
	to := testNow.Add(24 * time.Hour)

	t.Run("applies lazy completion per row", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.reservationRepo.EXPECT().ListForMachine(gomock.Any(), machineID, from, to).
			Return([]*readmodel.ReservationListRM{
				{ID: uuid.New(), StartsAt: testNow.Add(-3 * time.Hour), EndsAt: testNow.Add(-2 * time.Hour), Status: reservation.StatusApproved.String()},
				{ID: uuid.New(), StartsAt: testNow.Add(-time.Hour), EndsAt: testNow.Add(time.Hour), Status: reservation.StatusApproved.String()},
				{ID: uuid.New(), StartsAt: testNow.Add(2 * time.Hour), EndsAt: testNow.Add(3 * time.Hour), Status: reservation.StatusRequested.String()},
			}, nil)

		rms, err := uc.ListForMachine(ctx, machineID, from, to)
		require.NoError(t, err)
		require.Len(t, rms, 3)
		assert.Equal(t, reservation.StatusCompleted.String(), rms[0].Status)
		assert.Equal(t, reservation.StatusApproved.String(), rms[1].Status)
		assert.Equal(t, reservation.StatusRequested.String(), rms[2].Status)
	})

	t.Run("store failure surfaces as unavailable", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.reservationRepo.EXPECT().ListForMachine(gomock.Any(), machineID, from, to).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("timeout"), infra.KindDBFailure))

		_, err := uc.ListForMachine(ctx, machineID, from, to)
		assert.ErrorIs(t, err, usecase.ErrStoreUnavailable)
	})
}

func TestReservationReconcileCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("reports swept row count", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.reservationRepo.EXPECT().ReconcileCompleted(gomock.Any(), testNow).
			Return(int64(4), nil)

		count, err := uc.ReconcileCompleted(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("store failure surfaces as unavailable", func(t *testing.T) {
		uc, m := newReservationUseCase(t)
		m.reservationRepo.EXPECT().ReconcileCompleted(gomock.Any(), testNow).
			Return(int64(0), infra.WrapRepoErr("sweep failed", errors.New("timeout"), infra.KindDBFailure))

		_, err := uc.ReconcileCompleted(ctx)
		assert.ErrorIs(t, err, usecase.ErrStoreUnavailable)
	})
}
