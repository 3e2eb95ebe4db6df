package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"festfront/internal/lib/api/response"
	"festfront/internal/lib/logger/sl"
	"festfront/internal/session"
)

func New(log *slog.Logger, sessions session.Store, cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.student.logout.New"

		log = log.With(slog.String("op", op))

		cookie, err := r.Cookie(cookieName)
		if err == nil {
			if err = sessions.Delete(r.Context(), cookie.Value); err != nil {
				log.Error("failed to delete session", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to log out"))
				return
			}
		}

		// Logout with no cookie is still a successful logout.
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info("student logged out")

		render.JSON(w, r, response.OK())
	}
}
