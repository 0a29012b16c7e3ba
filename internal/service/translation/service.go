// Package translation implements dictionary-grounded machine translation and
// the voice (speech-to-text / text-to-speech) pass-throughs.
package translation

import (
	"context"
	"log/slog"

	"github.com/maayplatform/afmaay-backend/internal/config"
	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/internal/service/gap"
)

type entryRepo interface {
	ListVerified(ctx context.Context, limit int) ([]*domain.Entry, error)
}

type chatProvider interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type speechProvider interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

type gapRecorder interface {
	Record(ctx context.Context, input gap.RecordInput) (*domain.VocabularyGap, error)
}

// Service implements translation and voice business logic.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	chat    chatProvider
	speech  speechProvider
	gaps    gapRecorder
	cfg     config.DictConfig
}

// NewService creates a new translation service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	chat chatProvider,
	speech speechProvider,
	gaps gapRecorder,
	cfg config.DictConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "translation"),
		entries: entries,
		chat:    chat,
		speech:  speech,
		gaps:    gaps,
		cfg:     cfg,
	}
}
