package getProfile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"festfront/internal/http-server/middleware/auth"
	"festfront/internal/lib/api/response"
	"festfront/internal/lib/logger/sl"
	"festfront/internal/models"
	"festfront/internal/profile"
)

type ProfileResponse struct {
	response.Response
	Name    string           `json:"name"`
	Summary *profile.Summary `json:"summary"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileSource
type ProfileSource interface {
	GetTransactions(ctx context.Context, rollNumber string) ([]models.Enrollment, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
}

func New(log *slog.Logger, src ProfileSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.getProfile.New"

		log = log.With(slog.String("op", op))

		sess, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		log = log.With(slog.String("roll_number", sess.RollNumber))

		transactions, err := src.GetTransactions(r.Context(), sess.RollNumber)
		if err != nil {
			log.Error("failed to get transactions", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("could not load enrollments, please try again"))
			return
		}

		summary, err := profile.Build(r.Context(), src, transactions, sess.RollNumber)
		if err != nil {
			log.Error("failed to build profile", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("could not load enrollments, please try again"))
			return
		}

		log.Info("profile built",
			slog.Int("confirmed", len(summary.Confirmed)),
			slog.Int("pending", len(summary.Pending)),
		)

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			Name:     sess.Name,
			Summary:  summary,
		})
	}
}
