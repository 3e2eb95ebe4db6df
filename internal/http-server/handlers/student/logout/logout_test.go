package logout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festfront/internal/lib/logger/handlers/slogdiscard"
	"festfront/internal/session"
)

const cookieName = "fest_session"

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sessions := session.NewMemoryStore(time.Hour)

	token, err := sessions.Save(context.Background(), session.Session{RollNumber: "S1"})
	require.NoError(t, err)

	handler := New(logger, sessions, cookieName)

	req, err := http.NewRequest(http.MethodPost, "/logout", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	_, err = sessions.Load(context.Background(), token)
	assert.ErrorIs(t, err, session.ErrNotFound, "session is gone after logout")

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge, "cookie is cleared")
}

func TestLogoutHandlerWithoutCookie(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sessions := session.NewMemoryStore(time.Hour)

	handler := New(logger, sessions, cookieName)

	req, err := http.NewRequest(http.MethodPost, "/logout", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
