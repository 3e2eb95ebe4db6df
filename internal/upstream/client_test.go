package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festfront/internal/config"
	"festfront/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(config.Upstream{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestGetAllEvents(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/events", r.URL.Path)

		_, _ = w.Write([]byte(`[
			{"_id":"E1","eventName":"Quiz","maxSeats":50,"isFeatured":true},
			{"_id":"E2","eventName":"Hackathon","teamSize":4}
		]`))
	}))

	events, err := client.GetAllEvents(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "E1", events[0].ID)
	assert.Equal(t, 1, events[0].TeamSize, "teamSize defaults on decode")
	assert.Equal(t, 4, events[1].TeamSize)
}

func TestGetEventNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupStudent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/students/rollNo/S1", r.URL.Path)

		_, _ = w.Write([]byte(`{"rollNumber":"S1","name":"Asha","email":"asha@example.com"}`))
	}))

	student, err := client.LookupStudent(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", student.Name)
}

func TestLookupStudentNotRegistered(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.LookupStudent(context.Background(), "GHOST")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterStudent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/students", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var student models.Student
		require.NoError(t, json.NewDecoder(r.Body).Decode(&student))
		assert.Equal(t, "S1", student.RollNumber)

		_, _ = w.Write([]byte(`{"student":{"rollNumber":"S1","name":"Asha","email":"asha@example.com"}}`))
	}))

	student, err := client.RegisterStudent(context.Background(), models.Student{
		RollNumber: "S1",
		Name:       "Asha",
		Email:      "asha@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "S1", student.RollNumber)
}

func TestLoginRejected(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Login(context.Background(), "S1", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetTransactionsFilter(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions", r.URL.Path)
		assert.Equal(t, "S1", r.URL.Query().Get("rollNumber"))

		_, _ = w.Write([]byte(`[{"_id":"T1","eventId":"E1","enrolledId":"S1","teamMembers":["S1"],"payment":1}]`))
	}))

	enrollments, err := client.GetTransactions(context.Background(), "S1")
	require.NoError(t, err)

	require.Len(t, enrollments, 1)
	assert.True(t, enrollments[0].Confirmed())
}

func TestGetTransactionsUnfiltered(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("rollNumber"))

		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.GetTransactions(context.Background(), "")
	require.NoError(t, err)
}

func TestCreateTransaction(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var enrollment models.Enrollment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&enrollment))

		assert.Equal(t, models.PaymentPending, enrollment.Payment)

		enrollment.ID = "T1"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(enrollment)
	}))

	created, err := client.CreateTransaction(context.Background(), models.Enrollment{
		EventID:     "E1",
		EnrolledID:  "S1",
		TeamMembers: []string{"S1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "T1", created.ID)
}

func TestDeleteTransaction(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/transactions/T1", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteTransaction(context.Background(), "T1"))
}

func TestUnexpectedStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GetAllEvents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}
