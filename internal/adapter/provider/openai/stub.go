package openai

import (
	"context"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

// Stub is a keyless placeholder provider used when no API key is configured.
// Chat completion echoes the user prompt unchanged so translation degrades
// to a pass-through; audio endpoints report the upstream as unavailable.
type Stub struct{}

// NewStub creates a Stub provider.
func NewStub() *Stub {
	return &Stub{}
}

// Complete returns the prompt unchanged.
func (s *Stub) Complete(_ context.Context, _, prompt string) (string, error) {
	return prompt, nil
}

// Transcribe reports the speech service as unavailable.
func (s *Stub) Transcribe(_ context.Context, _ string, _ []byte) (string, error) {
	return "", domain.ErrUpstream
}

// Synthesize reports the speech service as unavailable.
func (s *Stub) Synthesize(_ context.Context, _, _ string) ([]byte, error) {
	return nil, domain.ErrUpstream
}
