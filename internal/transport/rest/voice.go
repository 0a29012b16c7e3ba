package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// maxAudioUpload caps the transcription body at 10 MiB.
const maxAudioUpload = 10 << 20

// voiceService defines the minimal interface needed by VoiceHandler.
type voiceService interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// VoiceHandler serves the speech-to-text and text-to-speech REST endpoints.
type VoiceHandler struct {
	svc voiceService
	log *slog.Logger
}

// NewVoiceHandler creates a VoiceHandler.
func NewVoiceHandler(svc voiceService, logger *slog.Logger) *VoiceHandler {
	return &VoiceHandler{svc: svc, log: logger.With("handler", "voice")}
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe handles POST /voice/transcribe. The audio comes as the "audio"
// part of a multipart form.
func (h *VoiceHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing audio file")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioUpload))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read audio")
		return
	}

	text, err := h.svc.Transcribe(r.Context(), header.Filename, audio)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, transcribeResponse{Text: text})
}

type synthesizeRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

type synthesizeResponse struct {
	Audio  string `json:"audio"` // base64 mp3
	Format string `json:"format"`
}

// Synthesize handles POST /voice/synthesize.
func (h *VoiceHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req synthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	audio, err := h.svc.Synthesize(r.Context(), req.Text, req.Voice)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, synthesizeResponse{
		Audio:  base64.StdEncoding.EncodeToString(audio),
		Format: "mp3",
	})
}
