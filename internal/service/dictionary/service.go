// Package dictionary implements the core lexicon business logic: search,
// contribution, moderation, and community edit suggestions.
package dictionary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/config"
	"github.com/maayplatform/afmaay-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Search(ctx context.Context, f domain.EntryFilter) ([]*domain.Entry, error)
	ListPending(ctx context.Context, limit int) ([]*domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	BulkCreate(ctx context.Context, entries []*domain.Entry) (int, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.EntryPatch, expectedVersion *int) (*domain.Entry, error)
	Verify(ctx context.Context, id uuid.UUID, expectedVersion *int) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type suggestionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EditSuggestion, error)
	Create(ctx context.Context, s *domain.EditSuggestion) (*domain.EditSuggestion, error)
	List(ctx context.Context, status *domain.SuggestionStatus, entryID *uuid.UUID) ([]*domain.EditSuggestion, error)
	Resolve(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.EditSuggestion, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the dictionary business logic.
type Service struct {
	log         *slog.Logger
	entries     entryRepo
	suggestions suggestionRepo
	tx          txManager
	cfg         config.DictConfig
}

// NewService creates a new dictionary service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	suggestions suggestionRepo,
	tx txManager,
	cfg config.DictConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "dictionary"),
		entries:     entries,
		suggestions: suggestions,
		tx:          tx,
		cfg:         cfg,
	}
}

// clampLimit ensures a limit is within (0, max], defaulting from 0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
