package addMember

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"festfront/internal/enrollment"
	"festfront/internal/http-server/middleware/auth"
	"festfront/internal/lib/api/response"
	"festfront/internal/lib/logger/sl"
	"festfront/internal/models"
)

type AddMemberRequest struct {
	RollNumber string `json:"rollNumber" validate:"required"`
}

type WorkflowResponse struct {
	response.Response
	Workflow *enrollment.Workflow `json:"workflow"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentDirectory
type StudentDirectory interface {
	LookupStudent(ctx context.Context, rollNumber string) (*models.Student, error)
}

func New(log *slog.Logger, directory StudentDirectory, drafts *enrollment.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.enroll.addMember.New"

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

		var req AddMemberRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.String("member", req.RollNumber),
		)

		var workflow *enrollment.Workflow

		err = drafts.Mutate(sess.RollNumber, eventID, func(draft *enrollment.Workflow) error {
			if err := draft.AddMember(r.Context(), directory, req.RollNumber); err != nil {
				return err
			}

			workflow = draft.Clone()

			return nil
		})
		if err != nil {
			if errors.Is(err, enrollment.ErrNoDraft) {
				log.Info("no enrollment in progress")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			log.Error("failed to add member", sl.Err(err))

			switch enrollment.Classify(err) {
			case enrollment.ClassValidation:
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			case enrollment.ClassNotFound:
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("failed to add member"))
			}
			return
		}

		log.Info("member added", slog.Int("team_size", len(workflow.Roster)))

		render.JSON(w, r, WorkflowResponse{
			Response: response.OK(),
			Workflow: workflow,
		})
	}
}
