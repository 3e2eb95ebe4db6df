package getProfile

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"festfront/internal/http-server/handlers/profile/getProfile/mocks"
	"festfront/internal/http-server/middleware/auth"
	"festfront/internal/lib/logger/handlers/slogdiscard"
	"festfront/internal/models"
	"festfront/internal/session"
)

func withSession(next http.HandlerFunc, sess session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r.WithContext(auth.ContextWithSession(r.Context(), sess)))
	}
}

func TestGetProfileSuccess(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sess := session.Session{RollNumber: "S1", Name: "Priya"}

	transactions := []models.Enrollment{
		{ID: "T1", EventID: "E1", EnrolledID: "S1", TeamMembers: []string{"S1"}, Payment: models.PaymentConfirmed},
		{ID: "T2", EventID: "E2", EnrolledID: "S2", TeamMembers: []string{"S2", "S1"}, Payment: models.PaymentPending},
		{ID: "T3", EventID: "E3", EnrolledID: "S3", TeamMembers: []string{"S3"}, Payment: models.PaymentConfirmed},
	}

	mockSource := mocks.NewProfileSource(t)
	mockSource.On("GetTransactions", mock.Anything, "S1").Return(transactions, nil)
	mockSource.On("GetEvent", mock.Anything, "E1").
		Return(&models.Event{ID: "E1", EventName: "Robo Race", EventDay: 1, EventCategory: "technical", TeamSize: 1}, nil)
	mockSource.On("GetEvent", mock.Anything, "E2").
		Return(&models.Event{ID: "E2", EventName: "Battle of Bands", EventDay: 2, EventCategory: "cultural", TeamSize: 4}, nil)

	req, err := http.NewRequest(http.MethodGet, "/profile", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	withSession(New(logger, mockSource), sess).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "Priya", resp.Name)
	require.Len(t, resp.Summary.Confirmed, 1)
	assert.Equal(t, "E1", resp.Summary.Confirmed[0].Event.ID)
	require.Len(t, resp.Summary.Pending, 1)
	assert.Equal(t, "E2", resp.Summary.Pending[0].Event.ID)
	assert.Contains(t, resp.Summary.Gaps, "no confirmed enrollment on day 2")
	assert.Contains(t, resp.Summary.Gaps, "no confirmed enrollment in the sports category")
}

func TestGetProfileTransactionsFailure(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sess := session.Session{RollNumber: "S1"}

	mockSource := mocks.NewProfileSource(t)
	mockSource.On("GetTransactions", mock.Anything, "S1").Return(nil, errors.New("upstream down"))

	req, err := http.NewRequest(http.MethodGet, "/profile", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	withSession(New(logger, mockSource), sess).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "could not load enrollments")
}

func TestGetProfileNoSession(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockSource := mocks.NewProfileSource(t)

	req, err := http.NewRequest(http.MethodGet, "/profile", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	New(logger, mockSource).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "authentication required")
}
