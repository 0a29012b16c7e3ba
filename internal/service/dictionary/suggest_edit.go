package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

// SuggestEdit records a proposed change to an existing entry. Requires an
// authenticated caller; the suggestion waits for admin review.
func (s *Service) SuggestEdit(ctx context.Context, input SuggestEditInput) (*domain.EditSuggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Reason = strings.TrimSpace(input.Reason)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The target entry must exist.
	if _, err := s.entries.GetByID(ctx, input.EntryID); err != nil {
		return nil, err
	}

	suggestion := &domain.EditSuggestion{
		ID:          uuid.New(),
		EntryID:     input.EntryID,
		SuggesterID: userID,
		MaayWord:    input.MaayWord,
		Translation: input.Translation,
		Reason:      input.Reason,
		Status:      domain.SuggestionStatusPending,
		CreatedAt:   time.Now(),
	}

	created, err := s.suggestions.Create(ctx, suggestion)
	if err != nil {
		return nil, fmt.Errorf("create suggestion: %w", err)
	}

	s.log.InfoContext(ctx, "edit suggested",
		slog.String("suggestion_id", created.ID.String()),
		slog.String("entry_id", input.EntryID.String()))

	return created, nil
}

// ListSuggestions returns edit suggestions, optionally filtered by status and
// entry. Admin only.
func (s *Service) ListSuggestions(ctx context.Context, status *domain.SuggestionStatus, entryID *uuid.UUID) ([]*domain.EditSuggestion, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	return s.suggestions.List(ctx, status, entryID)
}
