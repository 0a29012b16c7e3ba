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

// BulkImportResult summarizes a bulk import.
type BulkImportResult struct {
	Imported int
}

// BulkImport inserts a batch of entries, all verified immediately. Admin
// only. The whole batch is validated before anything is written; a single
// bad row rejects the import.
func (s *Service) BulkImport(ctx context.Context, input BulkImportInput) (*BulkImportResult, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if len(input.Entries) == 0 {
		return nil, domain.NewValidationError("entries", "required")
	}
	if len(input.Entries) > s.cfg.BulkImportMaxRows {
		return nil, domain.NewValidationError("entries",
			fmt.Sprintf("at most %d rows per import", s.cfg.BulkImportMaxRows))
	}

	now := time.Now()
	entries := make([]*domain.Entry, 0, len(input.Entries))
	for idx, row := range input.Entries {
		row.MaayWord = strings.TrimSpace(row.MaayWord)
		row.Translation = strings.TrimSpace(row.Translation)

		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", idx, err)
		}

		entries = append(entries, &domain.Entry{
			ID:             uuid.New(),
			MaayWord:       row.MaayWord,
			Translation:    row.Translation,
			PartOfSpeech:   row.PartOfSpeech,
			SoundGroup:     row.SoundGroup,
			ExampleMaay:    row.ExampleMaay,
			ExampleEnglish: row.ExampleEnglish,
			AudioURL:       row.AudioURL,
			ContributorID:  &userID,
			Verified:       true,
			Version:        1,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	var imported int
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		imported, err = s.entries.BulkCreate(txCtx, entries)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("bulk import: %w", txErr)
	}

	s.log.InfoContext(ctx, "bulk import finished", slog.Int("imported", imported))

	return &BulkImportResult{Imported: imported}, nil
}
