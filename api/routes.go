// Package api wires the REST surface: auth, template management, and
// prompt generation.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"prompt-designer/account"
	"prompt-designer/auth"
	"prompt-designer/generate"
)

type handler struct {
	directory *account.Directory
	tokens    *auth.Tokens
	generator *generate.Service
	log       zerolog.Logger
	startedAt time.Time
}

func RegisterRoutes(dir *account.Directory, tokens *auth.Tokens, gen *generate.Service, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	h := &handler{
		directory: dir,
		tokens:    tokens,
		generator: gen,
		log:       log,
		startedAt: time.Now(),
	}

	r.Post("/api/auth/register", h.register)
	r.Post("/api/auth/login", h.login)
	r.Get("/api/health", h.health)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/api/templates", h.listTemplates)
		r.Get("/api/templates/{id}", h.getTemplate)
		r.Post("/api/templates", h.createTemplate)
		r.Put("/api/templates/{id}", h.updateTemplate)
		r.Post("/api/generate", h.generate)
	})

	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"started_at": h.startedAt.UTC().Format(time.RFC3339),
		"uptime_sec": int(time.Since(h.startedAt).Seconds()),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
