package gap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

// Record stores an untranslated English term, or bumps the frequency of the
// existing record when the normalized term is already known.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.VocabularyGap, error) {
	input.EnglishTerm = strings.TrimSpace(input.EnglishTerm)
	input.Context = strings.TrimSpace(input.Context)
	input.Domain = strings.TrimSpace(input.Domain)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	normalized := domain.NormalizeTerm(input.EnglishTerm)
	if normalized == "" {
		return nil, domain.NewValidationError("english_term", "required")
	}

	gap := &domain.VocabularyGap{
		ID:             uuid.New(),
		EnglishTerm:    input.EnglishTerm,
		TermNormalized: normalized,
		Context:        input.Context,
		Domain:         input.Domain,
		Frequency:      1,
		Status:         domain.GapStatusPending,
		Version:        1,
		CreatedAt:      time.Now(),
	}

	recorded, err := s.gaps.Record(ctx, gap)
	if err != nil {
		return nil, fmt.Errorf("record gap: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary gap recorded",
		slog.String("term", recorded.TermNormalized),
		slog.Int("frequency", recorded.Frequency))

	return recorded, nil
}

// List returns vocabulary gaps ordered by frequency, most frequent first.
// Status defaults to pending.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.VocabularyGap, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == nil {
		pending := domain.GapStatusPending
		status = &pending
	}

	return s.gaps.List(ctx, domain.GapFilter{
		Status: status,
		Domain: input.Domain,
		Limit:  input.Limit,
	})
}
