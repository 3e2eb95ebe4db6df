package startEnrollment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"festfront/internal/enrollment"
	"festfront/internal/http-server/middleware/auth"
	"festfront/internal/lib/api/response"
	"festfront/internal/lib/logger/sl"
	"festfront/internal/models"
	"festfront/internal/upstream"
)

type WorkflowResponse struct {
	response.Response
	Workflow *enrollment.Workflow `json:"workflow"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EnrollmentStarter
type EnrollmentStarter interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	GetTransactions(ctx context.Context, rollNumber string) ([]models.Enrollment, error)
}

func New(log *slog.Logger, starter EnrollmentStarter, drafts *enrollment.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.enroll.startEnrollment.New"

		log = log.With(slog.String("op", op))

		sess, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.String("roll_number", sess.RollNumber),
		)

		// Resuming an abandoned draft keeps the roster the student already
		// built.
		if workflow, found := drafts.Get(sess.RollNumber, eventID); found {
			log.Info("enrollment draft resumed")
			responseOK(w, r, workflow)
			return
		}

		event, err := starter.GetEvent(r.Context(), eventID)
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

		workflow, err := enrollment.Begin(r.Context(), starter, *event, sess.RollNumber)
		if err != nil {
			log.Error("failed to start enrollment", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to start enrollment"))
			return
		}

		drafts.Put(sess.RollNumber, eventID, workflow)

		log.Info("enrollment started", slog.String("state", string(workflow.State)))

		responseOK(w, r, workflow)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, workflow *enrollment.Workflow) {
	render.JSON(w, r, WorkflowResponse{
		Response: response.OK(),
		Workflow: workflow,
	})
}
