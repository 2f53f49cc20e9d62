package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/levcheck/verifier/internal/repository"
	"github.com/levcheck/verifier/internal/runs"
)

// NewRouter creates the Chi router with all API routes mounted.
func NewRouter(
	runRepo *repository.RunRepo,
	discRepo *repository.DiscrepancyRepo,
	runsSvc *runs.Service,
	maxUploadBytes int64,
) http.Handler {
	h := &Handlers{
		runRepo:        runRepo,
		discRepo:       discRepo,
		runsSvc:        runsSvc,
		maxUploadBytes: maxUploadBytes,
	}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Route("/api/v1", func(r chi.Router) {
		// Verification runs.
		r.Post("/verifications", h.CreateVerification)
		r.Get("/verifications", h.ListVerifications)
		r.Get("/verifications/{id}", h.GetVerification)
		r.Get("/verifications/{id}/report.csv", h.GetVerificationReportCSV)

		// Dashboard.
		r.Get("/dashboard", h.GetDashboard)
	})

	return r
}
