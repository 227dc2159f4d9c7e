package request

import (
	"strings"
	"time"

	"fablab-scheduler/internal/usecase"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	MachineID uuid.UUID `json:"machine_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Purpose   *string   `json:"purpose,omitempty"`
}

func (r CreateReservationRequest) ToParams(userID uuid.UUID) usecase.CreateReservationParams {
	purpose := ""
	if r.Purpose != nil {
		purpose = strings.TrimSpace(*r.Purpose)
	}
	return usecase.CreateReservationParams{
		MachineID: r.MachineID,
		UserID:    userID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Purpose:   purpose,
	}
}

type RejectReservationRequest struct {
	Reason string `json:"reason" binding:"required"`
}
