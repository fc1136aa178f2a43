package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures the Chi router
func NewRouter(h *Handler, apiToken string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware. Every response on this router is JSON, the health
	// endpoint included, so the content type is set at the root.
	r.Use(middleware.RequestID)
	r.Use(Recoverer)
	r.Use(Logger)
	r.Use(CORS)
	r.Use(JSONContentType)

	// Health check endpoint
	r.Get("/health", h.HealthCheck)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuth(apiToken))

		r.Route("/vocabulary-cards", func(r chi.Router) {
			r.Get("/", h.ListCards)
			r.Post("/", h.CreateCard)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetCard)
				r.Patch("/favorite", h.UpdateCardFavorite)
				r.Get("/words", h.ListCardWords)
			})
		})

		r.Route("/vocabulary-words", func(r chi.Router) {
			r.Post("/", h.CreateWord)
			r.Get("/{id}", h.GetWord)
		})

		r.Route("/essay-grading", func(r chi.Router) {
			r.Get("/", h.ListEssays)
			r.Post("/", h.CreateEssay)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetEssay)
				r.Patch("/scores", h.UpdateEssayScores)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.FindUser)
			r.Post("/", h.CreateUser)
			r.Get("/{id}", h.GetUser)
		})
	})

	return r
}
