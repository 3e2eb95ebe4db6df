package cancelEnrollment

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"festfront/internal/http-server/handlers/profile/cancelEnrollment/mocks"
	"festfront/internal/lib/logger/handlers/slogdiscard"
	"festfront/internal/upstream"
)

func TestCancelEnrollment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		enrollmentID string
		mockError    error
		statusCode   int
		respError    string
	}{
		{
			name:         "Success",
			enrollmentID: "T1",
			statusCode:   http.StatusOK,
		},
		{
			name:         "Not found",
			enrollmentID: "missing",
			mockError:    upstream.ErrNotFound,
			statusCode:   http.StatusNotFound,
			respError:    "enrollment not found",
		},
		{
			name:         "Upstream failure",
			enrollmentID: "T1",
			mockError:    errors.New("upstream down"),
			statusCode:   http.StatusBadGateway,
			respError:    "failed to cancel enrollment",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewEnrollmentCanceller(t)
			mockCanceller.On("DeleteTransaction", mock.Anything, tc.enrollmentID).
				Return(tc.mockError).Once()

			router := chi.NewRouter()
			router.Delete("/enrollments/{id}", New(slogdiscard.NewDiscardLogger(), mockCanceller))

			req, err := http.NewRequest(http.MethodDelete, "/enrollments/"+tc.enrollmentID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.statusCode, rr.Code)
			if tc.respError != "" {
				assert.Contains(t, rr.Body.String(), tc.respError)
			}
		})
	}
}
