package api

import "github.com/go-chi/chi/v5"

// RegisterAuthRoutes mounts the public authentication endpoints.
func RegisterAuthRoutes(r chi.Router, h *AuthHandler) {
	r.Post("/api/auth/login", h.Login)
	r.Post("/api/auth/refresh", h.RefreshToken)
}

// RegisterStudyRoutes mounts the study and progress endpoints. Callers are
// expected to install the authentication middleware on r first.
func RegisterStudyRoutes(r chi.Router, h *StudyHandler) {
	r.Get("/api/study/next", h.NextCard)

	r.Route("/api/progress", func(r chi.Router) {
		r.Post("/answer", h.RecordAnswer)
		r.Get("/stats", h.Stats)
		r.Get("/deck/{deckId}", h.DeckProgress)
		r.Post("/reset/{deckId}", h.ResetDeckProgress)
	})
}
