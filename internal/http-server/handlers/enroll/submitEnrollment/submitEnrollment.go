package submitEnrollment

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
)

type SubmitResponse struct {
	response.Response
	Enrollment *models.Enrollment `json:"enrollment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EnrollmentSubmitter
type EnrollmentSubmitter interface {
	GetTransactions(ctx context.Context, rollNumber string) ([]models.Enrollment, error)
	CreateTransaction(ctx context.Context, enrollment models.Enrollment) (*models.Enrollment, error)
}

func New(log *slog.Logger, submitter EnrollmentSubmitter, drafts *enrollment.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.enroll.submitEnrollment.New"

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

		var created *models.Enrollment

		err := drafts.Mutate(sess.RollNumber, eventID, func(draft *enrollment.Workflow) error {
			result, err := draft.Submit(r.Context(), submitter, submitter)
			if err != nil {
				return err
			}

			created = result

			return nil
		})
		if err != nil {
			if errors.Is(err, enrollment.ErrNoDraft) {
				log.Info("no enrollment in progress")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			log.Error("failed to submit enrollment", sl.Err(err))

			// The draft survives a failed submit so the student can retry
			// without rebuilding the roster.
			switch enrollment.Classify(err) {
			case enrollment.ClassValidation, enrollment.ClassCapacity:
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("failed to submit enrollment, please try again"))
			}
			return
		}

		drafts.Remove(sess.RollNumber, eventID)

		log.Info("enrollment submitted", slog.Int("team_size", len(created.TeamMembers)))

		render.JSON(w, r, SubmitResponse{
			Response:   response.OK(),
			Enrollment: created,
		})
	}
}
