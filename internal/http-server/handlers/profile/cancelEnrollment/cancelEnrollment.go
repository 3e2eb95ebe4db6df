package cancelEnrollment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"festfront/internal/lib/api/response"
	"festfront/internal/lib/logger/sl"
	"festfront/internal/upstream"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EnrollmentCanceller
type EnrollmentCanceller interface {
	DeleteTransaction(ctx context.Context, id string) error
}

func New(log *slog.Logger, canceller EnrollmentCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.cancelEnrollment.New"

		log = log.With(slog.String("op", op))

		enrollmentID := chi.URLParam(r, "id")
		if enrollmentID == "" {
			log.Error("enrollment id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("enrollment id is required"))
			return
		}

		log = log.With(slog.String("enrollment_id", enrollmentID))

		if err := canceller.DeleteTransaction(r.Context(), enrollmentID); err != nil {
			if errors.Is(err, upstream.ErrNotFound) {
				log.Info("enrollment not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("enrollment not found"))
				return
			}

			log.Error("failed to cancel enrollment", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to cancel enrollment, please try again"))
			return
		}

		log.Info("enrollment cancelled")

		render.JSON(w, r, response.OK())
	}
}
