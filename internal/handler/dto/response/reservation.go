package response

import (
	"time"

	"fablab-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	MachineID   uuid.UUID `json:"machineId"`
	MachineName string    `json:"machineName"`
	UserID      uuid.UUID `json:"userId"`
	UserEmail   string    `json:"userEmail"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Status      string    `json:"status"`
	Purpose     *string   `json:"purpose,omitempty"`
	Reason      *string   `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID        uuid.UUID `json:"id"`
	MachineID uuid.UUID `json:"machineId"`
	UserID    uuid.UUID `json:"userId"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Status    string    `json:"status"`
	Purpose   *string   `json:"purpose,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	return &ReservationResponse{
		ID:          rm.ID,
		MachineID:   rm.MachineID,
		MachineName: rm.MachineName,
		UserID:      rm.UserID,
		UserEmail:   rm.UserEmail,
		StartsAt:    rm.StartsAt,
		EndsAt:      rm.EndsAt,
		Status:      rm.Status,
		Purpose:     rm.Purpose,
		Reason:      rm.Reason,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromReservationListRM(rm *readmodel.ReservationListRM) *ReservationListResponse {
	return &ReservationListResponse{
		ID:        rm.ID,
		MachineID: rm.MachineID,
		UserID:    rm.UserID,
		StartsAt:  rm.StartsAt,
		EndsAt:    rm.EndsAt,
		Status:    rm.Status,
		Purpose:   rm.Purpose,
		CreatedAt: rm.CreatedAt,
	}
}
