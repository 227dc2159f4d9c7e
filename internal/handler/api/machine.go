package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "fablab-scheduler/internal/handler/dto/request"
	resdto "fablab-scheduler/internal/handler/dto/response"
	"fablab-scheduler/internal/pkg/config"
	"fablab-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MachineHandler struct {
	machineUseCase      usecase.MachineUseCase
	availabilityUseCase usecase.AvailabilityUseCase
	feed                config.FeedConfig
}

func NewMachineHandler(machineUseCase usecase.MachineUseCase, availabilityUseCase usecase.AvailabilityUseCase, feed config.FeedConfig) *MachineHandler {
	return &MachineHandler{
		machineUseCase:      machineUseCase,
		availabilityUseCase: availabilityUseCase,
		feed:                feed,
	}
}

// @Summary List machines
// @Description List the machine registry
// @Tags machines
// @Produce json
// @Success 200 {array} resdto.MachineResponse
// @Router /machines [get]
func (h *MachineHandler) ListMachines(c *gin.Context) {
	machinesRM, err := h.machineUseCase.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := make([]*resdto.MachineResponse, len(machinesRM))
	for i, rm := range machinesRM {
		response[i] = resdto.FromMachineRM(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get machine
// @Description Get a machine by ID
// @Tags machines
// @Produce json
// @Param id path string true "Machine ID"
// @Success 200 {object} resdto.MachineResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /machines/{id} [get]
func (h *MachineHandler) GetMachine(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	machineRM, err := h.machineUseCase.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMachineRM(machineRM))
}

// @Summary Machine status snapshot
// @Description Point-in-time derived status of every machine with aggregate stats
// @Tags machines
// @Produce json
// @Success 200 {object} readmodel.SnapshotRM
// @Failure 503 {object} map[string]string
// @Router /machines/status [get]
func (h *MachineHandler) MachineStatus(c *gin.Context) {
	snapshot, err := h.availabilityUseCase.Snapshot(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setFeedCacheHeader(c)
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Machine status
// @Description Point-in-time derived status of one machine with its current or next reservation
// @Tags machines
// @Produce json
// @Param id path string true "Machine ID"
// @Success 200 {object} readmodel.MachineStatusRM
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /machines/{id}/status [get]
func (h *MachineHandler) MachineStatusByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	statusRM, err := h.availabilityUseCase.MachineStatus(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setFeedCacheHeader(c)
	c.JSON(http.StatusOK, statusRM)
}

// Consumers poll the status endpoints; max-age mirrors the feed refresh
// cadence so intermediaries never hold a snapshot longer than a poll cycle.
func (h *MachineHandler) setFeedCacheHeader(c *gin.Context) {
	c.Header("Cache-Control", fmt.Sprintf("max-age=%d", int(h.feed.RefreshInterval.Seconds())))
}

// @Summary Update machine flags
// @Description Set maintenance/broken/retired flags (staff only)
// @Tags machines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Machine ID"
// @Param request body reqdto.UpdateMachineFlagsRequest true "Flag update"
// @Success 200 {object} resdto.MachineResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /machines/{id}/flags [put]
func (h *MachineHandler) UpdateMachineFlags(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateMachineFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if req.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "At least one flag must be provided",
		})
		return
	}

	machineRM, err := h.machineUseCase.SetFlags(c.Request.Context(), id, req.ToFlags())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMachineRM(machineRM))
}

func (h *MachineHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMachineNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Machine not found",
		})
	case errors.Is(err, usecase.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
