package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/internal/service/dictionary"
	"github.com/maayplatform/afmaay-backend/internal/service/stats"
)

// statsService defines the minimal interface needed by AdminHandler.
type statsService interface {
	Stats(ctx context.Context) (*stats.Stats, error)
	PromoteUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// moderationService covers the admin-facing dictionary operations.
type moderationService interface {
	ListPending(ctx context.Context, limit int) ([]*domain.Entry, error)
	BulkImport(ctx context.Context, input dictionary.BulkImportInput) (*dictionary.BulkImportResult, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	stats      statsService
	moderation moderationService
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(statsSvc statsService, moderation moderationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		stats:      statsSvc,
		moderation: moderation,
		log:        logger.With("handler", "admin"),
	}
}

type statsResponse struct {
	TotalEntries    int `json:"totalEntries"`
	VerifiedEntries int `json:"verifiedEntries"`
	PendingEntries  int `json:"pendingEntries"`
	TotalUsers      int `json:"totalUsers"`
	PendingGaps     int `json:"pendingGaps"`
	GrammarRules    int `json:"grammarRules"`
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.stats.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalEntries:    s.TotalEntries,
		VerifiedEntries: s.VerifiedEntries,
		PendingEntries:  s.PendingEntries,
		TotalUsers:      s.TotalUsers,
		PendingGaps:     s.PendingGaps,
		GrammarRules:    s.GrammarRules,
	})
}

// PendingEntries handles GET /admin/pending-entries.
func (h *AdminHandler) PendingEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.moderation.ListPending(r.Context(), queryInt(r, "limit"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// BulkUpload handles POST /admin/bulk-upload/dictionary. The body is a JSON
// array of entries; all rows are imported verified or none are.
func (h *AdminHandler) BulkUpload(w http.ResponseWriter, r *http.Request) {
	var rows []createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := dictionary.BulkImportInput{
		Entries: make([]dictionary.CreateInput, 0, len(rows)),
	}
	for _, row := range rows {
		input.Entries = append(input.Entries, row.toInput())
	}

	result, err := h.moderation.BulkImport(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"imported": result.Imported,
		"message":  fmt.Sprintf("%d entries imported", result.Imported),
	})
}

// Promote handles POST /admin/promote/{user_id}.
func (h *AdminHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	promoted, err := h.stats.PromoteUser(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(promoted))
}
