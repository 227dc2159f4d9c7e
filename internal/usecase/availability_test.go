//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fablab-scheduler/internal/domain/machine"
	"fablab-scheduler/internal/domain/reservation"
	"fablab-scheduler/internal/infra"
	"fablab-scheduler/internal/pkg/clock"
	"fablab-scheduler/internal/usecase"
	"fablab-scheduler/tests/mock/repomock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAvailabilityUseCase(t *testing.T) (usecase.AvailabilityUseCase, *repomock.MockMachineRepository, *repomock.MockActiveReservationReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	machineRepo := repomock.NewMockMachineRepository(ctrl)
	reader := repomock.NewMockActiveReservationReader(ctrl)
	// The pool stays nil: MachineStatus never opens a transaction, so it
	// flows through untouched into the mocked repos.
	uc := usecase.NewAvailabilityUseCase(machineRepo, reader, nil, clock.NewMockClock(testNow))
	return uc, machineRepo, reader
}

func approvedSlot(t *testing.T, start, end time.Time) *machine.ActiveReservation {
	t.Helper()
	window, err := reservation.NewWindow(start, end)
	require.NoError(t, err)
	return &machine.ActiveReservation{ID: uuid.New(), UserID: uuid.New(), Window: window}
}

func TestAvailabilityMachineStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("occupied machine reads in_use with remaining minutes", func(t *testing.T) {
		uc, machineRepo, reader := newAvailabilityUseCase(t)
		m := storedMachine("Prusa MK4", "PRT-01")
		slot := approvedSlot(t, testNow.Add(-30*time.Minute), testNow.Add(30*time.Minute))

		machineRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		reader.EXPECT().CurrentOrNext(gomock.Any(), gomock.Any(), m.ID(), testNow).Return(slot, nil)

		rm, err := uc.MachineStatus(ctx, m.ID())
		require.NoError(t, err)
		assert.Equal(t, "in_use", rm.State)
		require.NotNil(t, rm.CurrentReservation)
		assert.Equal(t, slot.UserID, rm.CurrentReservation.UserID)
		require.NotNil(t, rm.AvailableInMinutes)
		assert.Equal(t, 30, *rm.AvailableInMinutes)
		assert.Nil(t, rm.NextReservation)
	})

	t.Run("upcoming reservation reads available with next", func(t *testing.T) {
		uc, machineRepo, reader := newAvailabilityUseCase(t)
		m := storedMachine("Prusa MK4", "PRT-01")
		slot := approvedSlot(t, testNow.Add(time.Hour), testNow.Add(2*time.Hour))

		machineRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		reader.EXPECT().CurrentOrNext(gomock.Any(), gomock.Any(), m.ID(), testNow).Return(slot, nil)

		rm, err := uc.MachineStatus(ctx, m.ID())
		require.NoError(t, err)
		assert.Equal(t, "available", rm.State)
		assert.Nil(t, rm.CurrentReservation)
		assert.Nil(t, rm.AvailableInMinutes)
		require.NotNil(t, rm.NextReservation)
		assert.Equal(t, slot.ID, rm.NextReservation.ID)
		assert.Equal(t, slot.Window.Start(), rm.NextReservation.StartsAt)
	})

	t.Run("idle machine reads available", func(t *testing.T) {
		uc, machineRepo, reader := newAvailabilityUseCase(t)
		m := storedMachine("Prusa MK4", "PRT-01")

		machineRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		reader.EXPECT().CurrentOrNext(gomock.Any(), gomock.Any(), m.ID(), testNow).Return(nil, nil)

		rm, err := uc.MachineStatus(ctx, m.ID())
		require.NoError(t, err)
		assert.Equal(t, "available", rm.State)
		assert.Nil(t, rm.CurrentReservation)
		assert.Nil(t, rm.NextReservation)
	})

	t.Run("broken wins over an active reservation", func(t *testing.T) {
		uc, machineRepo, reader := newAvailabilityUseCase(t)
		created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
		m := machine.ReconstructMachine(uuid.New(), "Epilog Fusion", "LSR-01", "laser_cutter", false, true, false, created, created)
		slot := approvedSlot(t, testNow.Add(-10*time.Minute), testNow.Add(50*time.Minute))

		machineRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		reader.EXPECT().CurrentOrNext(gomock.Any(), gomock.Any(), m.ID(), testNow).Return(slot, nil)

		rm, err := uc.MachineStatus(ctx, m.ID())
		require.NoError(t, err)
		assert.Equal(t, "broken", rm.State)
		assert.Nil(t, rm.CurrentReservation)
		assert.Nil(t, rm.AvailableInMinutes)
	})

	t.Run("unknown machine", func(t *testing.T) {
		uc, machineRepo, _ := newAvailabilityUseCase(t)
		id := uuid.New()

		machineRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("machine not found", nil, infra.KindNotFound))

		_, err := uc.MachineStatus(ctx, id)
		assert.ErrorIs(t, err, usecase.ErrMachineNotFound)
	})

	t.Run("store failure surfaces as unavailable", func(t *testing.T) {
		uc, machineRepo, reader := newAvailabilityUseCase(t)
		m := storedMachine("Prusa MK4", "PRT-01")

		machineRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		reader.EXPECT().CurrentOrNext(gomock.Any(), gomock.Any(), m.ID(), testNow).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("timeout"), infra.KindDBFailure))

		_, err := uc.MachineStatus(ctx, m.ID())
		assert.ErrorIs(t, err, usecase.ErrStoreUnavailable)
	})
}
