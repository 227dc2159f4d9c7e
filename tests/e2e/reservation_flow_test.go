//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "fablab-scheduler/internal/handler/dto/response"
	"fablab-scheduler/internal/usecase/readmodel"
	"fablab-scheduler/tests/common/dbtest"
	"fablab-scheduler/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	memberEmail  = "member@fablab.example.com"
	member2Email = "member2@fablab.example.com"
	staffEmail   = "staff@fablab.example.com"
	seedPassword = "password123"
)

type ReservationFlowTestSuite struct {
	SharedSuite
}

func TestReservationFlowSuite(t *testing.T) {
	suite.Run(t, new(ReservationFlowTestSuite))
}

func (s *ReservationFlowTestSuite) login(email string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": seedPassword}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().NotEmpty(response.AccessToken)
	return response.AccessToken
}

// subscribeAndValidate drives the full access-gate flow for a member:
// request a grant, then approve it as staff.
func (s *ReservationFlowTestSuite) subscribeAndValidate(memberToken, staffToken, email string) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/subscriptions",
		map[string]string{"plan": "monthly"}, memberToken)

	var pending readmodel.GrantRM
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &pending)
	s.Equal("pending", pending.Status)

	memberID, err := dbtest.UserIDByEmail(s.DB, email)
	s.Require().NoError(err)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("/api/subscriptions/%s/approve", memberID), nil, staffToken)

	var validated readmodel.GrantRM
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &validated)
	s.Equal("validated", validated.Status)
	s.NotNil(validated.AccessKey)
	s.NotNil(validated.ExpiresAt)
}

func (s *ReservationFlowTestSuite) createReservation(token string, machineID uuid.UUID, start, end time.Time) *resdto.ReservationResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
		map[string]any{
			"machine_id": machineID,
			"start_time": start.Format(time.RFC3339),
			"end_time":   end.Format(time.RFC3339),
		}, token)

	var response resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return &response
}

func (s *ReservationFlowTestSuite) TestReservationLifecycle() {
	s.Run("member without a validated grant cannot reserve", func() {
		memberToken := s.login(memberEmail)
		machineID, err := dbtest.MachineIDByCode(s.DB, "PRT-01")
		s.Require().NoError(err)

		start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			map[string]any{
				"machine_id": machineID,
				"start_time": start.Format(time.RFC3339),
				"end_time":   start.Add(time.Hour).Format(time.RFC3339),
			}, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "validated subscription")
	})

	s.Run("full lifecycle: subscribe, reserve, approve, cancel", func() {
		memberToken := s.login(memberEmail)
		staffToken := s.login(staffEmail)
		s.subscribeAndValidate(memberToken, staffToken, memberEmail)

		machineID, err := dbtest.MachineIDByCode(s.DB, "PRT-01")
		s.Require().NoError(err)

		start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
		created := s.createReservation(memberToken, machineID, start, start.Add(time.Hour))
		s.Equal("requested", created.Status)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/approve", created.ID), nil, staffToken)
		var approved resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &approved)
		s.Equal("approved", approved.Status)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/cancel", created.ID), nil, memberToken)
		var cancelled resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cancelled)
		s.Equal("cancelled", cancelled.Status)
	})

	s.Run("overlapping window is rejected once one is approved", func() {
		memberToken := s.login(memberEmail)
		staffToken := s.login(staffEmail)
		s.subscribeAndValidate(memberToken, staffToken, memberEmail)

		machineID, err := dbtest.MachineIDByCode(s.DB, "LSR-01")
		s.Require().NoError(err)

		start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
		created := s.createReservation(memberToken, machineID, start, start.Add(2*time.Hour))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/approve", created.ID), nil, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		// Overlaps [start+1h, start+3h) x [start, start+2h)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations",
			map[string]any{
				"machine_id": machineID,
				"start_time": start.Add(time.Hour).Format(time.RFC3339),
				"end_time":   start.Add(3 * time.Hour).Format(time.RFC3339),
			}, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflicts with an approved reservation")

		// Back-to-back window sharing the boundary instant is fine
		adjacent := s.createReservation(memberToken, machineID, start.Add(2*time.Hour), start.Add(3*time.Hour))
		s.Equal("requested", adjacent.Status)
	})

	s.Run("approval re-checks overlap between competing requests", func() {
		memberToken := s.login(memberEmail)
		member2Token := s.login(member2Email)
		staffToken := s.login(staffEmail)
		s.subscribeAndValidate(memberToken, staffToken, memberEmail)
		s.subscribeAndValidate(member2Token, staffToken, member2Email)

		machineID, err := dbtest.MachineIDByCode(s.DB, "CNC-01")
		s.Require().NoError(err)

		// Both requests land while nothing is approved yet
		start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
		first := s.createReservation(memberToken, machineID, start, start.Add(2*time.Hour))
		second := s.createReservation(member2Token, machineID, start.Add(time.Hour), start.Add(3*time.Hour))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/approve", first.ID), nil, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/approve", second.ID), nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflicts with an approved reservation")

		// The loser stays requested so staff can still reject it with a reason
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/reject", second.ID),
			map[string]string{"reason": "window taken"}, staffToken)
		var rejected resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &rejected)
		s.Equal("rejected", rejected.Status)
	})

	s.Run("member cannot cancel another member's reservation", func() {
		memberToken := s.login(memberEmail)
		member2Token := s.login(member2Email)
		staffToken := s.login(staffEmail)
		s.subscribeAndValidate(memberToken, staffToken, memberEmail)

		machineID, err := dbtest.MachineIDByCode(s.DB, "EMB-01")
		s.Require().NoError(err)

		start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
		created := s.createReservation(memberToken, machineID, start, start.Add(time.Hour))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/cancel", created.ID), nil, member2Token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("member cannot approve reservations", func() {
		memberToken := s.login(memberEmail)
		staffToken := s.login(staffEmail)
		s.subscribeAndValidate(memberToken, staffToken, memberEmail)

		machineID, err := dbtest.MachineIDByCode(s.DB, "PRT-02")
		s.Require().NoError(err)

		start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
		created := s.createReservation(memberToken, machineID, start, start.Add(time.Hour))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/reservations/%s/approve", created.ID), nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("machine reservations listing covers the requested range", func() {
		memberToken := s.login(memberEmail)
		staffToken := s.login(staffEmail)
		s.subscribeAndValidate(memberToken, staffToken, memberEmail)

		machineID, err := dbtest.MachineIDByCode(s.DB, "PRT-01")
		s.Require().NoError(err)

		start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
		s.createReservation(memberToken, machineID, start, start.Add(time.Hour))
		s.createReservation(memberToken, machineID, start.Add(2*time.Hour), start.Add(3*time.Hour))

		from := start.Add(-time.Hour).Format(time.RFC3339)
		to := start.Add(4 * time.Hour).Format(time.RFC3339)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/machines/%s/reservations?from=%s&to=%s", machineID, from, to), nil, "")

		var listed []*resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
		s.Require().Len(listed, 2)
		s.True(listed[0].StartsAt.Before(listed[1].StartsAt))
	})
}
