package getEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"festfront/internal/enrollment"
	"festfront/internal/lib/api/response"
	"festfront/internal/lib/logger/sl"
	"festfront/internal/models"
	"festfront/internal/upstream"
)

type EventResponse struct {
	response.Response
	Event              *models.Event `json:"event"`
	FilledSeats        int           `json:"filledSeats"`
	EnrollmentRequired bool          `json:"enrollmentRequired"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	GetTransactions(ctx context.Context, rollNumber string) ([]models.Enrollment, error)
}

func New(log *slog.Logger, getter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		event, err := getter.GetEvent(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, upstream.ErrNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to get event"))
			return
		}

		filled := 0
		if event.RequiresEnrollmentGating() {
			transactions, err := getter.GetTransactions(r.Context(), "")
			if err != nil {
				log.Error("failed to get seat count", sl.Err(err))
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("failed to get seat count"))
				return
			}

			filled = enrollment.CountFilledSeats(transactions, eventID)
		}

		log.Info("event retrieved successfully", slog.Int("filled_seats", filled))

		render.JSON(w, r, EventResponse{
			Response:           response.OK(),
			Event:              event,
			FilledSeats:        filled,
			EnrollmentRequired: event.RequiresEnrollmentGating(),
		})
	}
}
