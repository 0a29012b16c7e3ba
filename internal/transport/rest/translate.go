package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/maayplatform/afmaay-backend/internal/service/translation"
)

// translateService defines the minimal interface needed by TranslateHandler.
type translateService interface {
	Translate(ctx context.Context, input translation.TranslateInput) (*translation.TranslateResult, error)
}

// TranslateHandler serves the translation REST endpoint.
type TranslateHandler struct {
	svc translateService
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(svc translateService, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{svc: svc, log: logger.With("handler", "translate")}
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	Translation string   `json:"translation"`
	GapTerms    []string `json:"gapTerms,omitempty"`
}

// Translate handles POST /translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Translate(r.Context(), translation.TranslateInput{
		Text:   req.Text,
		Source: req.Source,
		Target: req.Target,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		Translation: result.Translation,
		GapTerms:    result.GapTerms,
	})
}
