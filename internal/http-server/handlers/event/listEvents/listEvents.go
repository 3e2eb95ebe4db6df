package listEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"festfront/internal/lib/api/response"
	"festfront/internal/lib/logger/sl"
	"festfront/internal/models"
)

type EventsResponse struct {
	response.Response
	Featured []models.Event `json:"featured"`
	Events   []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log = log.With(slog.String("op", op))

		events, err := eventsGetter.GetAllEvents(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		featured := make([]models.Event, 0)
		for _, event := range events {
			if event.IsFeatured {
				featured = append(featured, event)
			}
		}

		if q := r.URL.Query().Get("q"); q != "" {
			events = filter(events, q)
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, featured, events)
	}
}

// filter keeps events whose name, category, or start time contains the
// search term, case-insensitively.
func filter(events []models.Event, term string) []models.Event {
	term = strings.ToLower(term)

	matched := make([]models.Event, 0, len(events))
	for _, event := range events {
		if strings.Contains(strings.ToLower(event.EventName), term) ||
			strings.Contains(strings.ToLower(event.EventCategory), term) ||
			strings.Contains(strings.ToLower(event.StartTime), term) {
			matched = append(matched, event)
		}
	}

	return matched
}

func responseOK(w http.ResponseWriter, r *http.Request, featured, events []models.Event) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Featured: featured,
		Events:   events,
	})
}
