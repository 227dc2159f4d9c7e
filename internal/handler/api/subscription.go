package api

import (
	"errors"
	"net/http"

	reqdto "fablab-scheduler/internal/handler/dto/request"
	"fablab-scheduler/internal/handler/middleware"
	"fablab-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
	}
}

// @Summary Request subscription
// @Description File a pending subscription grant for the current user
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RequestSubscriptionRequest true "Subscription request"
// @Success 201 {object} readmodel.GrantRM
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /subscriptions [post]
func (h *SubscriptionHandler) RequestSubscription(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RequestSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	grantRM, err := h.subscriptionUseCase.Request(c.Request.Context(), userID, req.Plan)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPlan):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid subscription plan",
			})
		case errors.Is(err, usecase.ErrGrantAlreadyActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A validated subscription already exists",
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

	c.JSON(http.StatusCreated, grantRM)
}

// @Summary Get my subscription
// @Description Get the current user's subscription grant
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readmodel.GrantRM
// @Failure 404 {object} map[string]string
// @Router /subscriptions/me [get]
func (h *SubscriptionHandler) MySubscription(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	grantRM, err := h.subscriptionUseCase.Me(c.Request.Context(), userID)
	if err != nil {
		h.respondDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, grantRM)
}

// @Summary Approve subscription
// @Description Validate a pending grant, issuing an access key (staff only)
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} readmodel.GrantRM
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /subscriptions/{userId}/approve [post]
func (h *SubscriptionHandler) ApproveSubscription(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	grantRM, err := h.subscriptionUseCase.Approve(c.Request.Context(), userID)
	if err != nil {
		h.respondDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, grantRM)
}

// @Summary Reject subscription
// @Description Reject a pending grant with a reason (staff only)
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body reqdto.RejectSubscriptionRequest true "Rejection reason"
// @Success 200 {object} readmodel.GrantRM
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /subscriptions/{userId}/reject [post]
func (h *SubscriptionHandler) RejectSubscription(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	var req reqdto.RejectSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	grantRM, err := h.subscriptionUseCase.Reject(c.Request.Context(), userID, req.Reason)
	if err != nil {
		h.respondDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, grantRM)
}

func (h *SubscriptionHandler) respondDecisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrGrantNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Subscription grant not found",
		})
	case errors.Is(err, usecase.ErrGrantNotPending):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Subscription grant is not pending",
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

func parseUserIDParam(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return uuid.Nil, false
	}
	return userID, true
}
