package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	// All API routes will be under /api
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/signup", apiHandler.SignupHandler)
		r.Post("/login", apiHandler.LoginHandler)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// User-authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(apiHandler.JWTAuthMiddleware)

			// Generation and archive
			r.Post("/scripts/generate", apiHandler.GenerateScriptHandler)
			r.Get("/scripts", apiHandler.ListScriptsHandler)
			r.Get("/scripts/{scriptID}", apiHandler.GetScriptHandler)
			r.Post("/scripts/{scriptID}/evaluation", apiHandler.EvaluateScriptHandler)

			// Standalone retention critique, no script involved
			r.Post("/analysis/retention", apiHandler.AnalyzeRetentionHandler)

			// Learning workflow
			r.Post("/patterns/learn", apiHandler.LearnPatternHandler)
			r.Get("/patterns", apiHandler.ListPatternsHandler)
			r.Post("/style-notes", apiHandler.CreateStyleNoteHandler)
			r.Get("/style-notes", apiHandler.ListStyleNotesHandler)

			// Fixed curriculum panel
			r.Get("/curriculum", apiHandler.CurriculumHandler)
		})
	})

	return r
}
