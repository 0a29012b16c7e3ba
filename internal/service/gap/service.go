// Package gap implements the vocabulary gap pipeline: recording untranslated
// terms, attaching candidate renderings, and promoting approved gaps into
// verified dictionary entries.
package gap

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type gapRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyGap, error)
	Record(ctx context.Context, g *domain.VocabularyGap) (*domain.VocabularyGap, error)
	List(ctx context.Context, f domain.GapFilter) ([]*domain.VocabularyGap, error)
	Suggest(ctx context.Context, id uuid.UUID, candidate string) (*domain.VocabularyGap, error)
	Approve(ctx context.Context, id uuid.UUID, expectedVersion *int) (*domain.VocabularyGap, error)
}

type entryRepo interface {
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vocabulary gap business logic.
type Service struct {
	log     *slog.Logger
	gaps    gapRepo
	entries entryRepo
	tx      txManager
}

// NewService creates a new gap service.
func NewService(logger *slog.Logger, gaps gapRepo, entries entryRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "gap"),
		gaps:    gaps,
		entries: entries,
		tx:      tx,
	}
}
