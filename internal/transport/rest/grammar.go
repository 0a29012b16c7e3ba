package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/internal/service/grammar"
)

// grammarService defines the minimal interface needed by GrammarHandler.
type grammarService interface {
	Create(ctx context.Context, input grammar.CreateInput) (*domain.GrammarRule, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.GrammarRule, error)
	List(ctx context.Context, input grammar.ListInput) ([]*domain.GrammarRule, error)
}

// GrammarHandler serves the grammar reference REST endpoints.
type GrammarHandler struct {
	svc grammarService
	log *slog.Logger
}

// NewGrammarHandler creates a GrammarHandler.
func NewGrammarHandler(svc grammarService, logger *slog.Logger) *GrammarHandler {
	return &GrammarHandler{svc: svc, log: logger.With("handler", "grammar")}
}

// List handles GET /grammar.
// Query: category, difficulty, search.
func (h *GrammarHandler) List(w http.ResponseWriter, r *http.Request) {
	var input grammar.ListInput

	if c := r.URL.Query().Get("category"); c != "" {
		category := domain.GrammarCategory(c)
		input.Category = &category
	}
	if d := r.URL.Query().Get("difficulty"); d != "" {
		difficulty := domain.Difficulty(d)
		input.Difficulty = &difficulty
	}
	if s := r.URL.Query().Get("search"); s != "" {
		input.Search = &s
	}

	rules, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]grammarResponse, 0, len(rules))
	for _, rule := range rules {
		out = append(out, toGrammarResponse(rule))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /grammar/{id}.
func (h *GrammarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rule, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGrammarResponse(rule))
}

type createGrammarRequest struct {
	Category   string                  `json:"category"`
	Title      string                  `json:"title"`
	Content    string                  `json:"content"`
	Examples   []domain.GrammarExample `json:"examples"`
	Difficulty string                  `json:"difficulty"`
}

// Create handles POST /grammar (admin).
func (h *GrammarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGrammarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rule, err := h.svc.Create(r.Context(), grammar.CreateInput{
		Category:   domain.GrammarCategory(req.Category),
		Title:      req.Title,
		Content:    req.Content,
		Examples:   req.Examples,
		Difficulty: domain.Difficulty(req.Difficulty),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGrammarResponse(rule))
}
