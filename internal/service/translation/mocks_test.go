package translation

import (
	"context"
	"sync"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/internal/service/gap"
)

var (
	_ entryRepo      = &entryRepoMock{}
	_ chatProvider   = &chatProviderMock{}
	_ speechProvider = &speechProviderMock{}
	_ gapRecorder    = &gapRecorderMock{}
)

type entryRepoMock struct {
	ListVerifiedFunc func(ctx context.Context, limit int) ([]*domain.Entry, error)

	calls struct {
		ListVerified []struct {
			Limit int
		}
	}
	lock sync.RWMutex
}

func (mock *entryRepoMock) ListVerified(ctx context.Context, limit int) ([]*domain.Entry, error) {
	if mock.ListVerifiedFunc == nil {
		panic("entryRepoMock.ListVerifiedFunc: method is nil but entryRepo.ListVerified was just called")
	}
	mock.lock.Lock()
	mock.calls.ListVerified = append(mock.calls.ListVerified, struct{ Limit int }{Limit: limit})
	mock.lock.Unlock()
	return mock.ListVerifiedFunc(ctx, limit)
}

func (mock *entryRepoMock) ListVerifiedCalls() []struct{ Limit int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListVerified
}

type chatProviderMock struct {
	CompleteFunc func(ctx context.Context, system, prompt string) (string, error)

	calls struct {
		Complete []struct {
			System string
			Prompt string
		}
	}
	lock sync.RWMutex
}

func (mock *chatProviderMock) Complete(ctx context.Context, system, prompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("chatProviderMock.CompleteFunc: method is nil but chatProvider.Complete was just called")
	}
	callInfo := struct {
		System string
		Prompt string
	}{System: system, Prompt: prompt}
	mock.lock.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lock.Unlock()
	return mock.CompleteFunc(ctx, system, prompt)
}

func (mock *chatProviderMock) CompleteCalls() []struct {
	System string
	Prompt string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Complete
}

type speechProviderMock struct {
	TranscribeFunc func(ctx context.Context, filename string, audio []byte) (string, error)
	SynthesizeFunc func(ctx context.Context, text, voice string) ([]byte, error)

	calls struct {
		Transcribe []struct {
			Filename string
			Audio    []byte
		}
		Synthesize []struct {
			Text  string
			Voice string
		}
	}
	lock sync.RWMutex
}

func (mock *speechProviderMock) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if mock.TranscribeFunc == nil {
		panic("speechProviderMock.TranscribeFunc: method is nil but speechProvider.Transcribe was just called")
	}
	callInfo := struct {
		Filename string
		Audio    []byte
	}{Filename: filename, Audio: audio}
	mock.lock.Lock()
	mock.calls.Transcribe = append(mock.calls.Transcribe, callInfo)
	mock.lock.Unlock()
	return mock.TranscribeFunc(ctx, filename, audio)
}

func (mock *speechProviderMock) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if mock.SynthesizeFunc == nil {
		panic("speechProviderMock.SynthesizeFunc: method is nil but speechProvider.Synthesize was just called")
	}
	callInfo := struct {
		Text  string
		Voice string
	}{Text: text, Voice: voice}
	mock.lock.Lock()
	mock.calls.Synthesize = append(mock.calls.Synthesize, callInfo)
	mock.lock.Unlock()
	return mock.SynthesizeFunc(ctx, text, voice)
}

func (mock *speechProviderMock) SynthesizeCalls() []struct {
	Text  string
	Voice string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Synthesize
}

type gapRecorderMock struct {
	RecordFunc func(ctx context.Context, input gap.RecordInput) (*domain.VocabularyGap, error)

	calls struct {
		Record []struct {
			Input gap.RecordInput
		}
	}
	lock sync.RWMutex
}

func (mock *gapRecorderMock) Record(ctx context.Context, input gap.RecordInput) (*domain.VocabularyGap, error) {
	if mock.RecordFunc == nil {
		panic("gapRecorderMock.RecordFunc: method is nil but gapRecorder.Record was just called")
	}
	mock.lock.Lock()
	mock.calls.Record = append(mock.calls.Record, struct{ Input gap.RecordInput }{Input: input})
	mock.lock.Unlock()
	return mock.RecordFunc(ctx, input)
}

func (mock *gapRecorderMock) RecordCalls() []struct{ Input gap.RecordInput } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Record
}
