package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

// FindEntries searches the dictionary. Anonymous and regular callers see
// verified entries only; admins may include pending submissions.
func (s *Service) FindEntries(ctx context.Context, input FindInput) ([]*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var search *string
	if input.Search != nil {
		trimmed := strings.TrimSpace(*input.Search)
		if trimmed != "" {
			search = &trimmed
		}
	}

	language := input.Language
	if language == "" {
		language = domain.LanguageSideBoth
	}

	filter := domain.EntryFilter{
		Search:       search,
		Language:     language,
		SoundGroup:   input.SoundGroup,
		VerifiedOnly: !input.IncludePending || !ctxutil.IsAdminCtx(ctx),
		Limit:        clampLimit(input.Limit, s.cfg.SearchMaxLimit, s.cfg.SearchDefaultLimit),
		Offset:       input.Offset,
	}

	entries, err := s.entries.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}

	return entries, nil
}

// GetEntry returns a single entry by ID. Pending entries are visible to
// admins and to the contributor who submitted them.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.IsPending() && !s.canSeePending(ctx, entry) {
		return nil, domain.ErrNotFound
	}

	return entry, nil
}

func (s *Service) canSeePending(ctx context.Context, entry *domain.Entry) bool {
	if ctxutil.IsAdminCtx(ctx) {
		return true
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	return ok && entry.ContributorID != nil && *entry.ContributorID == userID
}
