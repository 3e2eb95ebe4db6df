package register

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
)

type RegisterRequest struct {
	Name       string `json:"name" validate:"required"`
	RollNumber string `json:"rollNumber" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
}

type RegisterResponse struct {
	response.Response
	Student *models.Student `json:"student"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentRegistrar
type StudentRegistrar interface {
	RegisterStudent(ctx context.Context, student models.Student) (*models.Student, error)
}

func New(log *slog.Logger, registrar StudentRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.student.register.New"

		log = log.With(slog.String("op", op))

		var req RegisterRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("roll_number", req.RollNumber))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		student, err := registrar.RegisterStudent(r.Context(), models.Student{
			Name:       req.Name,
			RollNumber: req.RollNumber,
			Email:      req.Email,
		})
		if err != nil {
			log.Error("failed to register student", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to register student"))
			return
		}

		log.Info("student registered successfully", slog.String("roll_number", student.RollNumber))

		render.JSON(w, r, RegisterResponse{
			Response: response.OK(),
			Student:  student,
		})
	}
}
