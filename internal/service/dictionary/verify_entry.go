package dictionary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

// VerifyEntry marks a pending entry as verified. Admin only. Idempotent:
// verifying an already verified entry succeeds without change. Returns
// ErrConflict if expectedVersion is set and stale.
func (s *Service) VerifyEntry(ctx context.Context, entryID uuid.UUID, expectedVersion *int) (*domain.Entry, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}

	entry, err := s.entries.Verify(ctx, entryID, expectedVersion)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry verified",
		slog.String("entry_id", entry.ID.String()))

	return entry, nil
}

// ListPending returns entries awaiting moderation, oldest first. Admin only.
func (s *Service) ListPending(ctx context.Context, limit int) ([]*domain.Entry, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	limit = clampLimit(limit, s.cfg.SearchMaxLimit, s.cfg.SearchDefaultLimit)

	return s.entries.ListPending(ctx, limit)
}
