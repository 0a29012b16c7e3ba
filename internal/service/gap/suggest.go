package gap

import (
	"context"
	"log/slog"
	"strings"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

// Suggest attaches a candidate Af Maay rendering to a pending gap. Requires
// an authenticated caller. A later suggestion overwrites an earlier one while
// the gap is still pending.
func (s *Service) Suggest(ctx context.Context, input SuggestInput) (*domain.VocabularyGap, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	input.SuggestedMaay = strings.TrimSpace(input.SuggestedMaay)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.gaps.Suggest(ctx, input.GapID, input.SuggestedMaay)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "gap suggestion attached",
		slog.String("gap_id", updated.ID.String()))

	return updated, nil
}
