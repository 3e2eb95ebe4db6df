package register

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"festfront/internal/http-server/handlers/student/register/mocks"
	"festfront/internal/lib/logger/handlers/slogdiscard"
	"festfront/internal/models"
)

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.StudentRegistrar)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"name":"Asha","rollNumber":"S1","email":"asha@example.com"}`,
			mockSetup: func(m *mocks.StudentRegistrar) {
				m.On("RegisterStudent", mock.Anything, models.Student{
					Name:       "Asha",
					RollNumber: "S1",
					Email:      "asha@example.com",
				}).Return(&models.Student{Name: "Asha", RollNumber: "S1", Email: "asha@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"rollNumber":"S1"`)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.StudentRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing fields",
			requestBody:    `{"name":"Asha"}`,
			mockSetup:      func(m *mocks.StudentRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "RollNumber")
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:           "Invalid email",
			requestBody:    `{"name":"Asha","rollNumber":"S1","email":"not-an-email"}`,
			mockSetup:      func(m *mocks.StudentRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:        "Upstream failure",
			requestBody: `{"name":"Asha","rollNumber":"S1","email":"asha@example.com"}`,
			mockSetup: func(m *mocks.StudentRegistrar) {
				m.On("RegisterStudent", mock.Anything, mock.Anything).Return(nil, errors.New("duplicate roll number"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"failed to register student"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRegistrar := mocks.NewStudentRegistrar(t)
			tc.mockSetup(mockRegistrar)

			handler := New(logger, mockRegistrar)

			req, err := http.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
