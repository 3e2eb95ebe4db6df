package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"festfront/internal/lib/api/response"
	"festfront/internal/lib/logger/sl"
	"festfront/internal/models"
	"festfront/internal/session"
	"festfront/internal/upstream"
)

type LoginRequest struct {
	RollNumber string `json:"rollNumber" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	response.Response
	Student *models.Student `json:"student"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Login(ctx context.Context, rollNumber, password string) (*models.Student, error)
}

func New(log *slog.Logger, auth Authenticator, sessions session.Store, cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.student.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

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

		log = log.With(slog.String("roll_number", req.RollNumber))

		student, err := auth.Login(r.Context(), req.RollNumber, req.Password)
		if err != nil {
			if errors.Is(err, upstream.ErrUnauthorized) {
				log.Info("login rejected")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid roll number or password"))
				return
			}

			log.Error("failed to log in", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		token, err := sessions.Save(r.Context(), session.FromStudent(*student))
		if err != nil {
			log.Error("failed to save session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info("student logged in")

		render.JSON(w, r, LoginResponse{
			Response: response.OK(),
			Student:  student,
		})
	}
}
