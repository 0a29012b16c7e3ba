package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

// UpdateEntry applies a patch to an existing entry. Admin only.
// Returns ErrConflict if ExpectedVersion is set and the entry has moved on.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateInput) (*domain.Entry, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.entries.Update(ctx, input.EntryID, input.Patch, input.ExpectedVersion)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry updated",
		slog.String("entry_id", updated.ID.String()),
		slog.Int("version", updated.Version))

	return updated, nil
}

// DeleteEntry removes an entry permanently. Admin only.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if entryID == uuid.Nil {
		return domain.NewValidationError("entry_id", "required")
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted", slog.String("entry_id", entryID.String()))
	return nil
}
