package submitEnrollment

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"festfront/internal/enrollment"
	"festfront/internal/http-server/handlers/enroll/submitEnrollment/mocks"
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

func submitRequest(t *testing.T, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Post("/events/{id}/enrollment/submit", handler)

	req, err := http.NewRequest(http.MethodPost, "/events/E1/enrollment/submit", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func TestSubmitEnrollmentSuccess(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sess := session.Session{RollNumber: "S1"}

	created := models.Enrollment{
		ID:          "T1",
		EventID:     "E1",
		EnrolledID:  "S1",
		TeamMembers: []string{"S1"},
		Payment:     models.PaymentPending,
	}

	mockSubmitter := mocks.NewEnrollmentSubmitter(t)
	mockSubmitter.On("GetTransactions", mock.Anything, "").Return(nil, nil)
	mockSubmitter.On("CreateTransaction", mock.Anything, mock.Anything).Return(&created, nil)

	drafts := enrollment.NewDraftStore(time.Minute)
	drafts.Put("S1", "E1", &enrollment.Workflow{
		Event:  models.Event{ID: "E1", TeamSize: 1, MaxSeats: 10},
		Roster: []string{"S1"},
		State:  enrollment.StateReady,
	})

	rr := submitRequest(t, withSession(New(logger, mockSubmitter, drafts), sess))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "T1", resp.Enrollment.ID)
	assert.Equal(t, models.PaymentPending, resp.Enrollment.Payment)

	_, found := drafts.Get("S1", "E1")
	assert.False(t, found, "draft is removed after a successful submit")
}

func TestSubmitEnrollmentSeatsFull(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sess := session.Session{RollNumber: "S1"}

	mockSubmitter := mocks.NewEnrollmentSubmitter(t)
	mockSubmitter.On("GetTransactions", mock.Anything, "").Return([]models.Enrollment{
		{EventID: "E1", Payment: models.PaymentConfirmed},
		{EventID: "E1", Payment: models.PaymentConfirmed},
	}, nil)

	drafts := enrollment.NewDraftStore(time.Minute)
	drafts.Put("S1", "E1", &enrollment.Workflow{
		Event:  models.Event{ID: "E1", TeamSize: 1, MaxSeats: 2},
		Roster: []string{"S1"},
		State:  enrollment.StateReady,
	})

	rr := submitRequest(t, withSession(New(logger, mockSubmitter, drafts), sess))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "no seats left")
}

func TestSubmitEnrollmentMissingTeamName(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sess := session.Session{RollNumber: "S1"}

	mockSubmitter := mocks.NewEnrollmentSubmitter(t)

	drafts := enrollment.NewDraftStore(time.Minute)
	drafts.Put("S1", "E1", &enrollment.Workflow{
		Event:  models.Event{ID: "E1", TeamSize: 3, MaxSeats: 0},
		Roster: []string{"S1", "S2"},
		State:  enrollment.StateBuildingTeam,
	})

	rr := submitRequest(t, withSession(New(logger, mockSubmitter, drafts), sess))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "team name is required")
}

func TestSubmitEnrollmentUpstreamFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sess := session.Session{RollNumber: "S1"}

	mockSubmitter := mocks.NewEnrollmentSubmitter(t)
	mockSubmitter.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, errors.New("upstream down"))

	drafts := enrollment.NewDraftStore(time.Minute)
	drafts.Put("S1", "E1", &enrollment.Workflow{
		Event:  models.Event{ID: "E1", TeamSize: 1, MaxSeats: 0},
		Roster: []string{"S1"},
		State:  enrollment.StateReady,
	})

	rr := submitRequest(t, withSession(New(logger, mockSubmitter, drafts), sess))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "please try again")

	w, found := drafts.Get("S1", "E1")
	require.True(t, found, "draft survives for a retry")
	assert.Equal(t, []string{"S1"}, w.Roster)
}

func TestSubmitEnrollmentNoDraft(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sess := session.Session{RollNumber: "S1"}

	mockSubmitter := mocks.NewEnrollmentSubmitter(t)
	drafts := enrollment.NewDraftStore(time.Minute)

	rr := submitRequest(t, withSession(New(logger, mockSubmitter, drafts), sess))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no enrollment in progress")
}
