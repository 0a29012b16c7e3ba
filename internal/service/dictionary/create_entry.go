package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

// CreateEntry submits a new dictionary entry. Admin submissions are verified
// immediately; contributor submissions enter the moderation queue.
func (s *Service) CreateEntry(ctx context.Context, input CreateInput) (*domain.Entry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.MaayWord = strings.TrimSpace(input.MaayWord)
	input.Translation = strings.TrimSpace(input.Translation)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &domain.Entry{
		ID:             uuid.New(),
		MaayWord:       input.MaayWord,
		Translation:    input.Translation,
		PartOfSpeech:   input.PartOfSpeech,
		SoundGroup:     input.SoundGroup,
		ExampleMaay:    input.ExampleMaay,
		ExampleEnglish: input.ExampleEnglish,
		AudioURL:       input.AudioURL,
		ContributorID:  &userID,
		Verified:       ctxutil.IsAdminCtx(ctx),
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry submitted",
		slog.String("entry_id", created.ID.String()),
		slog.Bool("verified", created.Verified))

	return created, nil
}
