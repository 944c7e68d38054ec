package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/badapples/registry/authenticator"
	"github.com/badapples/registry/config"
	"github.com/badapples/registry/controllers"
	"github.com/badapples/registry/middleware"
	"github.com/badapples/registry/repositories"
	"github.com/badapples/registry/services"
)

// setupRouter configures all routes
func setupRouter(cfg *config.Config, srvs *services.Services, store *repositories.Store, sso authenticator.Provider) (*chi.Mux, error) {
	ctrl := controllers.NewControllers(srvs, sso)

	reportLimit, err := middleware.NewRateLimiter("community_report", 10, time.Hour)
	if err != nil {
		return nil, err
	}
	loginLimit, err := middleware.NewRateLimiter("admin_login", 5, time.Minute)
	if err != nil {
		return nil, err
	}

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "badapples_session",
		Secure:      cfg.UseHTTPS,
		Gclifetime:  cfg.SessionLifetime,
		Maxlifetime: cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequestInfo)
	r.Use(sessionHandler)
	r.Use(middleware.LoadActor(srvs.Users))

	// PUBLIC ROUTES
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status, code := "healthy", http.StatusOK
		if err := store.Ping(r.Context()); err != nil {
			status, code = "unavailable", http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{"status": status, "service": "badapples"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.With(reportLimit.Handler).Post("/community_report", ctrl.Content.SubmitCommunityReport)
	r.Post("/dispute/{table}/{id}", ctrl.Disputes.File)
	r.With(loginLimit.Handler).Post("/admin/login", ctrl.Auth.Login)
	r.Post("/admin/logout", ctrl.Auth.Logout)
	r.Get("/login", ctrl.Auth.SSOLogin)
	r.Get("/callback", ctrl.Auth.Callback)

	// MODERATOR ROUTES
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireModerator)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/", ctrl.Admin.Dashboard)
			r.Get("/audit", ctrl.Admin.AuditLog)

			r.Get("/moderate/{kind}/{id}", ctrl.Moderation.Review)
			r.Post("/approve/{kind}/{id}", ctrl.Moderation.Approve)
			r.Post("/reject/{kind}/{id}", ctrl.Moderation.Reject)
			r.Post("/batch_approve", ctrl.Moderation.BatchApprove)
			r.Post("/batch_reject", ctrl.Moderation.BatchReject)

			r.Route("/disputes", func(r chi.Router) {
				r.Get("/", ctrl.Disputes.List)
				r.Get("/{id}", ctrl.Disputes.Get)
				r.Post("/{id}/review", ctrl.Disputes.Review)
				r.Post("/{id}/resolve", ctrl.Disputes.Resolve)
			})

			// ADMIN ROUTES
			r.With(middleware.RequireAdmin).Post("/register", ctrl.Admin.Register)
		})

		r.Post("/officers", ctrl.Content.CreateOfficer)
		r.Post("/incidents", ctrl.Content.CreateIncident)
		r.Post("/evidence", ctrl.Content.CreateEvidence)
	})

	return r, nil
}
