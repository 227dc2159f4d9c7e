package request

import (
	"fablab-scheduler/internal/usecase"
)

// UpdateMachineFlagsRequest is a partial update; omitted flags are untouched.
type UpdateMachineFlagsRequest struct {
	Maintenance *bool `json:"maintenance,omitempty"`
	Broken      *bool `json:"broken,omitempty"`
	Retired     *bool `json:"retired,omitempty"`
}

func (r UpdateMachineFlagsRequest) ToFlags() usecase.MachineFlags {
	return usecase.MachineFlags{
		Maintenance: r.Maintenance,
		Broken:      r.Broken,
		Retired:     r.Retired,
	}
}

func (r UpdateMachineFlagsRequest) IsEmpty() bool {
	return r.Maintenance == nil && r.Broken == nil && r.Retired == nil
}
