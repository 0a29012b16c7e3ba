package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

// ReviewSuggestion resolves a pending edit suggestion. Admin only.
// Applying patches the target entry and marks the suggestion applied, in one
// transaction. Dismissing leaves the entry untouched. Both outcomes are
// terminal: re-reviewing returns ErrConflict.
func (s *Service) ReviewSuggestion(ctx context.Context, input ReviewInput) (*domain.EditSuggestion, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	suggestion, err := s.suggestions.GetByID(ctx, input.SuggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion.Status != domain.SuggestionStatusPending {
		return nil, fmt.Errorf("suggestion %s already %s: %w",
			suggestion.ID, suggestion.Status, domain.ErrConflict)
	}

	if input.Action == ReviewActionDismiss {
		resolved, err := s.suggestions.Resolve(ctx, suggestion.ID, domain.SuggestionStatusDismissed)
		if err != nil {
			return nil, err
		}

		s.log.InfoContext(ctx, "suggestion dismissed",
			slog.String("suggestion_id", suggestion.ID.String()))

		return resolved, nil
	}

	var resolved *domain.EditSuggestion
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Resolve first so a concurrent reviewer loses on the status
		// precondition rather than double-patching the entry.
		var resolveErr error
		resolved, resolveErr = s.suggestions.Resolve(txCtx, suggestion.ID, domain.SuggestionStatusApplied)
		if resolveErr != nil {
			return resolveErr
		}

		if _, updateErr := s.entries.Update(txCtx, suggestion.EntryID, suggestion.Patch(), nil); updateErr != nil {
			return fmt.Errorf("apply suggestion to entry: %w", updateErr)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "suggestion applied",
		slog.String("suggestion_id", suggestion.ID.String()),
		slog.String("entry_id", suggestion.EntryID.String()))

	return resolved, nil
}
