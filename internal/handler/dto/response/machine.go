package response

import (
	"time"

	"fablab-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type MachineResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Category    string    `json:"category"`
	Maintenance bool      `json:"maintenance"`
	Broken      bool      `json:"broken"`
	Retired     bool      `json:"retired"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromMachineRM(rm *readmodel.MachineRM) *MachineResponse {
	return &MachineResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Code:        rm.Code,
		Category:    rm.Category,
		Maintenance: rm.Maintenance,
		Broken:      rm.Broken,
		Retired:     rm.Retired,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}
