package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "fablab-scheduler/internal/handler/dto/request"
	resdto "fablab-scheduler/internal/handler/dto/response"
	"fablab-scheduler/internal/handler/middleware"
	"fablab-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create reservation
// @Description Request a reservation window on a machine
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reservationRM, err := h.reservationUseCase.Create(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation window",
			})
		case errors.Is(err, usecase.ErrNotEligible):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "A validated subscription is required to reserve machines",
			})
		case errors.Is(err, usecase.ErrMachineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Machine not found",
			})
		case errors.Is(err, usecase.ErrMachineNotBookable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Machine cannot be reserved in its current state",
			})
		case errors.Is(err, usecase.ErrReservationConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Window conflicts with an approved reservation",
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
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationRM(reservationRM))
}

// @Summary Approve reservation
// @Description Approve a requested reservation (staff only)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/approve [post]
func (h *ReservationHandler) ApproveReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservationRM, err := h.reservationUseCase.Approve(c.Request.Context(), id)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(reservationRM))
}

// @Summary Reject reservation
// @Description Reject a requested reservation with a reason (staff only)
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RejectReservationRequest true "Rejection reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) RejectReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.RejectReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reservationRM, err := h.reservationUseCase.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(reservationRM))
}

// @Summary Cancel reservation
// @Description Cancel a reservation (owner or staff)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, okID := middleware.GetUserID(c)
	role, okRole := middleware.GetUserRole(c)
	if !okID || !okRole {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationRM, err := h.reservationUseCase.Cancel(c.Request.Context(), id, userID, role)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(reservationRM))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservationRM, err := h.reservationUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
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
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(reservationRM))
}

// @Summary List machine reservations
// @Description List reservations overlapping [from, to) for a machine, ordered by window start
// @Tags reservations
// @Produce json
// @Param id path string true "Machine ID"
// @Param from query string true "Range start (RFC3339)"
// @Param to query string true "Range end (RFC3339)"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Router /machines/{id}/reservations [get]
func (h *ReservationHandler) ListMachineReservations(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid 'from' query parameter, expected RFC3339",
		})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid 'to' query parameter, expected RFC3339",
		})
		return
	}
	if !from.Before(to) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "'from' must be before 'to'",
		})
		return
	}

	reservationsRM, err := h.reservationUseCase.ListForMachine(c.Request.Context(), id, from, to)
	if err != nil {
		if errors.Is(err, usecase.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReservationListResponse, len(reservationsRM))
	for i, rm := range reservationsRM {
		response[i] = resdto.FromReservationListRM(rm)
	}
	c.JSON(http.StatusOK, response)
}

func (h *ReservationHandler) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to modify this reservation",
		})
	case errors.Is(err, usecase.ErrReservationConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Window conflicts with an approved reservation",
		})
	case errors.Is(err, usecase.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation state does not allow this transition",
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

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
