package rest

import (
	"net/http"

	"github.com/maayplatform/afmaay-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Dictionary *DictionaryHandler
	Gaps       *GapHandler
	Grammar    *GrammarHandler
	Translate  *TranslateHandler
	Voice      *VoiceHandler
	Admin      *AdminHandler
}

// NewRouter builds the HTTP route table. Privilege checks live in the
// services; the router only shapes URLs. searchLimit wraps the dictionary
// search route with per-IP rate limiting.
func NewRouter(h Handlers, searchLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.Handle("GET /dictionary", searchLimit(http.HandlerFunc(h.Dictionary.List)))
	mux.HandleFunc("GET /dictionary/{id}", h.Dictionary.Get)
	mux.HandleFunc("POST /dictionary", h.Dictionary.Create)
	mux.HandleFunc("PUT /dictionary/{id}", h.Dictionary.Update)
	mux.HandleFunc("DELETE /dictionary/{id}", h.Dictionary.Delete)
	mux.HandleFunc("POST /dictionary/{id}/verify", h.Dictionary.Verify)
	mux.HandleFunc("POST /dictionary/{id}/suggest-edit", h.Dictionary.SuggestEdit)
	mux.HandleFunc("GET /dictionary/suggestions", h.Dictionary.ListSuggestions)
	mux.HandleFunc("POST /dictionary/suggestions/{id}/review", h.Dictionary.ReviewSuggestion)

	mux.HandleFunc("GET /vocabulary-gaps", h.Gaps.List)
	mux.HandleFunc("POST /vocabulary-gaps/{id}/suggest", h.Gaps.Suggest)
	mux.HandleFunc("POST /vocabulary-gaps/{id}/approve", h.Gaps.Approve)

	mux.HandleFunc("GET /grammar", h.Grammar.List)
	mux.HandleFunc("GET /grammar/{id}", h.Grammar.Get)
	mux.HandleFunc("POST /grammar", h.Grammar.Create)

	mux.HandleFunc("POST /translate", h.Translate.Translate)
	mux.HandleFunc("POST /voice/transcribe", h.Voice.Transcribe)
	mux.HandleFunc("POST /voice/synthesize", h.Voice.Synthesize)

	mux.HandleFunc("GET /admin/stats", h.Admin.Stats)
	mux.HandleFunc("GET /admin/pending-entries", h.Admin.PendingEntries)
	mux.HandleFunc("POST /admin/bulk-upload/dictionary", h.Admin.BulkUpload)
	mux.HandleFunc("POST /admin/promote/{user_id}", h.Admin.Promote)

	return mux
}
