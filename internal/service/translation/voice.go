package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

const (
	maxSynthesizeTextLen = 4096
	defaultVoice         = "alloy"
)

// Transcribe converts an audio recording to text via the speech-to-text
// collaborator. The result is used verbatim as a search query by clients.
func (s *Service) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", domain.NewValidationError("audio", "required")
	}

	text, err := s.speech.Transcribe(ctx, filename, audio)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// Synthesize converts text to speech, returning mp3 audio bytes. Voice
// defaults when blank.
func (s *Service) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", "required")
	}
	if len(text) > maxSynthesizeTextLen {
		return nil, domain.NewValidationError("text", "too long")
	}
	if voice == "" {
		voice = defaultVoice
	}

	audio, err := s.speech.Synthesize(ctx, text, voice)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	return audio, nil
}
