// Package stats implements the admin dashboard counters and user promotion.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

type entryCounter interface {
	Count(ctx context.Context, verified *bool) (int, error)
}

type userRepo interface {
	Count(ctx context.Context) (int, error)
	Promote(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type gapCounter interface {
	CountPending(ctx context.Context) (int, error)
}

type grammarCounter interface {
	Count(ctx context.Context) (int, error)
}

// Service implements admin statistics and user management.
type Service struct {
	log     *slog.Logger
	entries entryCounter
	users   userRepo
	gaps    gapCounter
	grammar grammarCounter
}

// NewService creates a new stats service.
func NewService(
	logger *slog.Logger,
	entries entryCounter,
	users userRepo,
	gaps gapCounter,
	grammar grammarCounter,
) *Service {
	return &Service{
		log:     logger.With("service", "stats"),
		entries: entries,
		users:   users,
		gaps:    gaps,
		grammar: grammar,
	}
}

// Stats holds the admin dashboard counters.
type Stats struct {
	TotalEntries    int
	VerifiedEntries int
	PendingEntries  int
	TotalUsers      int
	PendingGaps     int
	GrammarRules    int
}

// Stats returns the dashboard counters. Admin only.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	total, err := s.entries.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}

	verified := true
	verifiedCount, err := s.entries.Count(ctx, &verified)
	if err != nil {
		return nil, fmt.Errorf("count verified entries: %w", err)
	}

	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	gaps, err := s.gaps.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending gaps: %w", err)
	}

	rules, err := s.grammar.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count grammar rules: %w", err)
	}

	return &Stats{
		TotalEntries:    total,
		VerifiedEntries: verifiedCount,
		PendingEntries:  total - verifiedCount,
		TotalUsers:      users,
		PendingGaps:     gaps,
		GrammarRules:    rules,
	}, nil
}

// PromoteUser grants the admin role to a user. Admin only.
func (s *Service) PromoteUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	promoted, err := s.users.Promote(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted to admin",
		slog.String("user_id", promoted.ID.String()))

	return promoted, nil
}
