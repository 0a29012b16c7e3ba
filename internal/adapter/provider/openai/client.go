// Package openai implements thin HTTP clients for the external AI
// collaborators: chat completion (translation), speech-to-text, and
// text-to-speech. The API is consumed, never reimplemented.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/maayplatform/afmaay-backend/internal/config"
	"github.com/maayplatform/afmaay-backend/internal/domain"
)

// Client calls the OpenAI-compatible HTTP API.
type Client struct {
	baseURL     string
	apiKey      string
	chatModel   string
	speechModel string
	ttsModel    string
	httpClient  *http.Client
	log         *slog.Logger
}

// NewClient creates a Client from provider configuration.
func NewClient(cfg config.ProvidersConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     cfg.OpenAIBaseURL,
		apiKey:      cfg.OpenAIAPIKey,
		chatModel:   cfg.ChatModel,
		speechModel: cfg.SpeechModel,
		ttsModel:    cfg.TTSModel,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		log:         logger.With("adapter", "openai"),
	}
}

// NewClientWithURL creates a Client against a custom base URL (for testing).
func NewClientWithURL(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      "test",
		chatModel:   "gpt-4o",
		speechModel: "whisper-1",
		ttsModel:    "tts-1",
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		log:         logger.With("adapter", "openai"),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a system+user prompt pair to the chat completion endpoint
// and returns the assistant's reply.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal chat request: %w", err)
	}

	respBody, err := c.post(ctx, "/chat/completions", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("openai: decode chat response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty chat response: %w", domain.ErrUpstream)
	}

	return resp.Choices[0].Message.Content, nil
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe sends an audio blob to the speech-to-text endpoint and returns
// the transcribed text.
func (c *Client) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("openai: create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("openai: write audio: %w", err)
	}
	if err := mw.WriteField("model", c.speechModel); err != nil {
		return "", fmt.Errorf("openai: write model field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("openai: close multipart: %w", err)
	}

	respBody, err := c.post(ctx, "/audio/transcriptions", mw.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}

	var resp transcribeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("openai: decode transcription: %w", err)
	}

	return resp.Text, nil
}

type synthesizeRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`
}

// Synthesize sends text to the text-to-speech endpoint and returns the raw
// mp3 bytes.
func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	body, err := json.Marshal(synthesizeRequest{
		Model: c.ttsModel,
		Voice: voice,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: marshal tts request: %w", err)
	}

	return c.post(ctx, "/audio/speech", "application/json", bytes.NewReader(body))
}

// post executes a POST with a single retry on 5xx or network errors.
func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("openai: read request body: %w", err)
	}

	resp, err := c.doWithRetry(ctx, path, contentType, payload)
	if err != nil {
		c.log.ErrorContext(ctx, "openai request failed",
			slog.String("path", path), slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai: request failed: %w", domain.ErrUpstream)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "openai non-200",
			slog.String("path", path), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("openai: status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	return respBody, nil
}

func (c *Client) doWithRetry(ctx context.Context, path, contentType string, payload []byte) (*http.Response, error) {
	resp, err := c.do(ctx, path, contentType, payload)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "openai retry", slog.String("path", path), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return c.do(ctx, path, contentType, payload)
}

func (c *Client) do(ctx context.Context, path, contentType string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.httpClient.Do(req)
}
