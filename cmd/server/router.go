package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lpetrosyan/vocab-api/internal/api"
	apimiddleware "github.com/lpetrosyan/vocab-api/internal/api/middleware"
)

// setupRouter builds the route tree. Auth endpoints are public; everything
// else requires a Bearer token and is throttled per user.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	pairHandler := api.NewPairHandler(app.userService)
	wordHandler := api.NewWordHandler(app.wordService)
	reviewHandler := api.NewReviewHandler(app.reviewService)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(apimiddleware.RateLimit(app.limiter))

			r.Post("/pairs", pairHandler.Create)
			r.Get("/pairs", pairHandler.List)
			r.Get("/pairs/active", pairHandler.GetActive)
			r.Put("/pairs/active", pairHandler.SetActive)

			r.Post("/words", wordHandler.Create)
			r.Get("/words", wordHandler.List)
			r.Get("/words/search", wordHandler.Search)
			r.Get("/words/{id}", wordHandler.Get)
			r.Patch("/words/{id}", wordHandler.Update)
			r.Delete("/words/{id}", wordHandler.Delete)

			r.Post("/sets", wordHandler.CreateSet)
			r.Get("/sets", wordHandler.ListSets)
			r.Delete("/sets/{id}", wordHandler.DeleteSet)

			r.Get("/review/next", reviewHandler.NextCard)
			r.Get("/review/overview", reviewHandler.Overview)
			r.Post("/review/cards/{id}/answer", reviewHandler.SubmitAnswer)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
