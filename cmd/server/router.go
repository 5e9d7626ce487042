package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/openhire/jobboard-api/internal/api/middleware"
)

// router assembles the HTTP route tree: public aggregation views, rate
// limited credential endpoints, and the authenticated company surface.
func (app *application) router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.RequestLogger(app.logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public views
		r.Get("/companies", app.companyHandler.List)
		r.Get("/companies/{id}", app.companyHandler.Detail)
		r.Get("/jobs/{id}", app.companyHandler.JobDetail)
		r.Get("/cities", app.companyHandler.Cities)
		r.Post("/cvs", app.cvHandler.Submit)

		// Credential endpoints, rate limited per client
		r.Group(func(r chi.Router) {
			r.Use(apimiddleware.RateLimit(app.rateLimiter))
			r.Post("/auth/register", app.authHandler.Register)
			r.Post("/auth/login", app.authHandler.Login)
			r.Post("/auth/logout", app.authHandler.Logout)
		})

		// Authenticated company surface
		r.Route("/company", func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)

			r.Get("/profile", app.authHandler.GetProfile)
			r.Put("/profile", app.authHandler.UpdateProfile)

			r.Post("/jobs", app.jobHandler.Create)
			r.Get("/jobs", app.jobHandler.List)
			r.Get("/jobs/{id}", app.jobHandler.GetForEdit)
			r.Put("/jobs/{id}", app.jobHandler.Update)
			r.Delete("/jobs/{id}", app.jobHandler.Delete)

			r.Get("/cvs", app.cvHandler.List)
			r.Patch("/cvs/{id}/viewed", app.cvHandler.MarkViewed)
			r.Patch("/cvs/{id}/status", app.cvHandler.UpdateStatus)
		})
	})

	return r
}
