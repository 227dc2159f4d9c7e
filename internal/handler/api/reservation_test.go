//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"fablab-scheduler/internal/domain/user"
	"fablab-scheduler/internal/handler/api"
	reqdto "fablab-scheduler/internal/handler/dto/request"
	resdto "fablab-scheduler/internal/handler/dto/response"
	"fablab-scheduler/internal/usecase"
	"fablab-scheduler/internal/usecase/readmodel"
	"fablab-scheduler/tests/common/httptest"
	"fablab-scheduler/tests/mock/usecasemock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockReservation *usecasemock.MockReservationUseCase
	handler         *api.ReservationHandler
	userID          uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservation = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockReservation)
	s.userID = uuid.New()

	// Mock middleware behavior: inject the authenticated member
	fakeAuth := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
	}

	s.router.POST("/reservations", fakeAuth, s.handler.CreateReservation)
	s.router.GET("/reservations/:id", fakeAuth, s.handler.GetReservation)
	s.router.POST("/reservations/:id/approve", fakeAuth, s.handler.ApproveReservation)
	s.router.POST("/reservations/:id/reject", fakeAuth, s.handler.RejectReservation)
	s.router.POST("/reservations/:id/cancel", fakeAuth, s.handler.CancelReservation)
	s.router.GET("/machines/:id/reservations", s.handler.ListMachineReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) reservationRM(status string) *readmodel.ReservationRM {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &readmodel.ReservationRM{
		ID:          uuid.New(),
		MachineID:   uuid.New(),
		MachineName: "Prusa MK4 #1",
		UserID:      s.userID,
		UserEmail:   "member@example.com",
		StartsAt:    now.Add(time.Hour),
		EndsAt:      now.Add(2 * time.Hour),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	path := "/reservations"

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reqBody := reqdto.CreateReservationRequest{
		MachineID: uuid.New(),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
	returnRM := s.reservationRM("requested")

	s.Run("success: returns 201 Created", func() {
		s.mockReservation.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnRM.ID, response.ID)
		s.Equal("requested", response.Status)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path,
			map[string]any{"machine_id": "not-a-uuid"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid window",
				usecaseError:   usecase.ErrInvalidWindow,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid reservation window",
			},
			{
				name:           "no validated subscription",
				usecaseError:   usecase.ErrNotEligible,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "validated subscription",
			},
			{
				name:           "machine not found",
				usecaseError:   usecase.ErrMachineNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Machine not found",
			},
			{
				name:           "machine not bookable",
				usecaseError:   usecase.ErrMachineNotBookable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "cannot be reserved",
			},
			{
				name:           "overlapping approved reservation",
				usecaseError:   usecase.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "conflicts with an approved reservation",
			},
			{
				name:           "store unavailable",
				usecaseError:   usecase.ErrStoreUnavailable,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReservation.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestApproveReservation() {
	reservationID := uuid.New()
	path := fmt.Sprintf("/reservations/%s/approve", reservationID)
	returnRM := s.reservationRM("approved")

	s.Run("success: returns 200 OK with approved reservation", func() {
		s.mockReservation.EXPECT().Approve(gomock.Any(), reservationID).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Status)
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/not-a-uuid/approve", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				usecaseError:   usecase.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "conflicting reservation approved meanwhile",
				usecaseError:   usecase.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "conflicts with an approved reservation",
			},
			{
				name:           "not in requested state",
				usecaseError:   usecase.ErrInvalidState,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "does not allow this transition",
			},
			{
				name:           "store unavailable",
				usecaseError:   usecase.ErrStoreUnavailable,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReservation.EXPECT().Approve(gomock.Any(), reservationID).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestRejectReservation() {
	reservationID := uuid.New()
	path := fmt.Sprintf("/reservations/%s/reject", reservationID)
	reqBody := reqdto.RejectReservationRequest{Reason: "machine reserved for workshop"}
	returnRM := s.reservationRM("rejected")

	s.Run("success: returns 200 OK with rejected reservation", func() {
		s.mockReservation.EXPECT().Reject(gomock.Any(), reservationID, reqBody.Reason).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("rejected", response.Status)
	})

	s.Run("error: 400 Bad Request when reason is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()
	path := fmt.Sprintf("/reservations/%s/cancel", reservationID)
	returnRM := s.reservationRM("cancelled")

	s.Run("success: returns 200 OK with cancelled reservation", func() {
		s.mockReservation.EXPECT().Cancel(gomock.Any(), reservationID, s.userID, user.RoleMember).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 403 Forbidden when cancelling another member's reservation", func() {
		s.mockReservation.EXPECT().Cancel(gomock.Any(), reservationID, s.userID, user.RoleMember).
			Return(nil, usecase.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("error: 409 Conflict on terminal state", func() {
		s.mockReservation.EXPECT().Cancel(gomock.Any(), reservationID, s.userID, user.RoleMember).
			Return(nil, usecase.ErrInvalidState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "does not allow this transition")
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	reservationID := uuid.New()
	path := fmt.Sprintf("/reservations/%s", reservationID)
	returnRM := s.reservationRM("approved")

	s.Run("success: returns 200 OK", func() {
		s.mockReservation.EXPECT().Get(gomock.Any(), reservationID).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnRM.ID, response.ID)
	})

	s.Run("error: 404 Not Found for unknown reservation", func() {
		s.mockReservation.EXPECT().Get(gomock.Any(), reservationID).
			Return(nil, usecase.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestListMachineReservations() {
	machineID := uuid.New()
	basePath := fmt.Sprintf("/machines/%s/reservations", machineID)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	listPath := func(from, to string) string {
		q := url.Values{}
		if from != "" {
			q.Set("from", from)
		}
		if to != "" {
			q.Set("to", to)
		}
		return basePath + "?" + q.Encode()
	}
	validPath := listPath(from.Format(time.RFC3339), to.Format(time.RFC3339))

	s.Run("success: returns 200 OK with window-ordered list", func() {
		returnList := []*readmodel.ReservationListRM{
			{ID: uuid.New(), MachineID: machineID, UserID: s.userID, StartsAt: from.Add(9 * time.Hour), EndsAt: from.Add(10 * time.Hour), Status: "approved"},
			{ID: uuid.New(), MachineID: machineID, UserID: s.userID, StartsAt: from.Add(13 * time.Hour), EndsAt: from.Add(14 * time.Hour), Status: "requested"},
		}
		s.mockReservation.EXPECT().ListForMachine(gomock.Any(), machineID, from, to).
			Return(returnList, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validPath, nil, "")

		var response []*resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(returnList[0].ID, response[0].ID)
	})

	s.Run("success: returns empty array when no reservations overlap", func() {
		s.mockReservation.EXPECT().ListForMachine(gomock.Any(), machineID, from, to).
			Return([]*readmodel.ReservationListRM{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validPath, nil, "")

		var response []*resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request on range validation", func() {
		testCases := []struct {
			name string
			path string
			msg  string
		}{
			{name: "missing from", path: listPath("", to.Format(time.RFC3339)), msg: "'from'"},
			{name: "malformed to", path: listPath(from.Format(time.RFC3339), "tomorrow"), msg: "'to'"},
			{name: "from equal to to", path: listPath(from.Format(time.RFC3339), from.Format(time.RFC3339)), msg: "'from' must be before 'to'"},
			{name: "from after to", path: listPath(to.Format(time.RFC3339), from.Format(time.RFC3339)), msg: "'from' must be before 'to'"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 503 when store is unavailable", func() {
		s.mockReservation.EXPECT().ListForMachine(gomock.Any(), machineID, from, to).
			Return(nil, usecase.ErrStoreUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validPath, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
	})
}
