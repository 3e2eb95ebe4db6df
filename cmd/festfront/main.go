package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"festfront/internal/config"
	"festfront/internal/enrollment"
	"festfront/internal/http-server/handlers/enroll/addMember"
	"festfront/internal/http-server/handlers/enroll/setTeamName"
	"festfront/internal/http-server/handlers/enroll/startEnrollment"
	"festfront/internal/http-server/handlers/enroll/submitEnrollment"
	"festfront/internal/http-server/handlers/event/getEvent"
	"festfront/internal/http-server/handlers/event/listEvents"
	"festfront/internal/http-server/handlers/profile/cancelEnrollment"
	"festfront/internal/http-server/handlers/profile/getProfile"
	"festfront/internal/http-server/handlers/student/login"
	"festfront/internal/http-server/handlers/student/logout"
	"festfront/internal/http-server/handlers/student/register"
	"festfront/internal/http-server/middleware/auth"
	"festfront/internal/http-server/middleware/mwlogger"
	"festfront/internal/lib/logger/handlers/slogpretty"
	"festfront/internal/lib/logger/sl"
	"festfront/internal/session"
	"festfront/internal/upstream"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting fest front end", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	sessions, memSessions, err := setupSessions(cfg)
	if err != nil {
		log.Error("failed to init session store", sl.Err(err))
		os.Exit(1)
	}

	api := upstream.New(cfg.Upstream)
	drafts := enrollment.NewDraftStore(cfg.Drafts.TTL)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/api", func(r chi.Router) {
		r.Get("/events", listEvents.New(log, api))
		r.Get("/events/{id}", getEvent.New(log, api))
		r.Post("/register", register.New(log, api))
		r.Post("/login", login.New(log, api, sessions, cfg.Session.CookieName))
		r.Post("/logout", logout.New(log, sessions, cfg.Session.CookieName))

		r.Group(func(r chi.Router) {
			r.Use(auth.New(log, sessions, cfg.Session.CookieName))

			r.Post("/events/{id}/enrollment", startEnrollment.New(log, api, drafts))
			r.Post("/events/{id}/enrollment/members", addMember.New(log, api, drafts))
			r.Put("/events/{id}/enrollment/team-name", setTeamName.New(log, drafts))
			r.Post("/events/{id}/enrollment/submit", submitEnrollment.New(log, api, drafts))
			r.Get("/profile", getProfile.New(log, api))
			r.Delete("/enrollments/{id}", cancelEnrollment.New(log, api))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(cfg.Drafts.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := drafts.Sweep(); removed > 0 {
					log.Debug("swept expired drafts", slog.Int("count", removed))
				}
				if memSessions != nil {
					if removed := memSessions.Sweep(); removed > 0 {
						log.Debug("swept expired sessions", slog.Int("count", removed))
					}
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupSessions(cfg *config.Config) (session.Store, *session.MemoryStore, error) {
	if cfg.Session.Backend == "redis" {
		store, err := session.NewRedisStore(cfg.Redis, cfg.Session.TTL)
		if err != nil {
			return nil, nil, err
		}

		return store, nil, nil
	}

	mem := session.NewMemoryStore(cfg.Session.TTL)

	return mem, mem, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
