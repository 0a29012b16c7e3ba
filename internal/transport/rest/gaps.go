package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/internal/service/gap"
)

// gapService defines the minimal interface needed by GapHandler.
type gapService interface {
	List(ctx context.Context, input gap.ListInput) ([]*domain.VocabularyGap, error)
	Suggest(ctx context.Context, input gap.SuggestInput) (*domain.VocabularyGap, error)
	Approve(ctx context.Context, input gap.ApproveInput) (*gap.ApproveResult, error)
}

// GapHandler serves the vocabulary gap REST endpoints.
type GapHandler struct {
	svc gapService
	log *slog.Logger
}

// NewGapHandler creates a GapHandler.
func NewGapHandler(svc gapService, logger *slog.Logger) *GapHandler {
	return &GapHandler{svc: svc, log: logger.With("handler", "gaps")}
}

// List handles GET /vocabulary-gaps.
// Query: status (defaults to pending), domain, limit.
func (h *GapHandler) List(w http.ResponseWriter, r *http.Request) {
	input := gap.ListInput{Limit: queryInt(r, "limit")}

	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.GapStatus(s)
		input.Status = &status
	}
	if d := r.URL.Query().Get("domain"); d != "" {
		input.Domain = &d
	}

	gaps, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]gapResponse, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, toGapResponse(g))
	}
	writeJSON(w, http.StatusOK, out)
}

type suggestGapRequest struct {
	SuggestedMaay string `json:"suggestedMaay"`
}

// Suggest handles POST /vocabulary-gaps/{id}/suggest.
func (h *GapHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req suggestGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Suggest(r.Context(), gap.SuggestInput{
		GapID:         id,
		SuggestedMaay: req.SuggestedMaay,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGapResponse(updated))
}

type approveGapResponse struct {
	Gap   gapResponse   `json:"gap"`
	Entry entryResponse `json:"entry"`
}

// Approve handles POST /vocabulary-gaps/{id}/approve (admin). An If-Match
// header makes the approval conditional on the gap version.
func (h *GapHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	expectedVersion, err := ifMatchVersion(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Approve(r.Context(), gap.ApproveInput{
		GapID:           id,
		ExpectedVersion: expectedVersion,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, approveGapResponse{
		Gap:   toGapResponse(result.Gap),
		Entry: toEntryResponse(result.Entry),
	})
}
