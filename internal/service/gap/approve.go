package gap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

// ApproveResult pairs the approved gap with the dictionary entry it produced.
type ApproveResult struct {
	Gap   *domain.VocabularyGap
	Entry *domain.Entry
}

// Approve promotes a pending gap with a candidate rendering into a verified
// dictionary entry. Admin only. The status flip and the entry insert happen
// in one transaction; a gap without a suggestion cannot be approved, and an
// approved gap never returns to pending.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*ApproveResult, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if input.GapID == uuid.Nil {
		return nil, domain.NewValidationError("gap_id", "required")
	}

	gap, err := s.gaps.GetByID(ctx, input.GapID)
	if err != nil {
		return nil, err
	}
	if gap.Status != domain.GapStatusPending {
		return nil, fmt.Errorf("gap %s already approved: %w", gap.ID, domain.ErrConflict)
	}
	if !gap.HasSuggestion() {
		return nil, domain.NewValidationError("suggested_maay", "gap has no candidate rendering")
	}

	result := &ApproveResult{}
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Flip status first: a concurrent approval loses on the pending
		// precondition before any entry is written.
		approved, approveErr := s.gaps.Approve(txCtx, gap.ID, input.ExpectedVersion)
		if approveErr != nil {
			return approveErr
		}

		entry, createErr := s.entries.Create(txCtx, approved.PromotedEntry(time.Now()))
		if createErr != nil {
			return fmt.Errorf("create promoted entry: %w", createErr)
		}

		result.Gap = approved
		result.Entry = entry
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "gap approved",
		slog.String("gap_id", result.Gap.ID.String()),
		slog.String("entry_id", result.Entry.ID.String()))

	return result, nil
}
