package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/internal/service/dictionary"
)

// dictionaryService defines the minimal interface needed by DictionaryHandler.
type dictionaryService interface {
	FindEntries(ctx context.Context, input dictionary.FindInput) ([]*domain.Entry, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
	CreateEntry(ctx context.Context, input dictionary.CreateInput) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, input dictionary.UpdateInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
	VerifyEntry(ctx context.Context, entryID uuid.UUID, expectedVersion *int) (*domain.Entry, error)
	SuggestEdit(ctx context.Context, input dictionary.SuggestEditInput) (*domain.EditSuggestion, error)
	ListSuggestions(ctx context.Context, status *domain.SuggestionStatus, entryID *uuid.UUID) ([]*domain.EditSuggestion, error)
	ReviewSuggestion(ctx context.Context, input dictionary.ReviewInput) (*domain.EditSuggestion, error)
}

// DictionaryHandler serves the dictionary REST endpoints.
type DictionaryHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(svc dictionaryService, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{svc: svc, log: logger.With("handler", "dictionary")}
}

// List handles GET /dictionary.
// Query: search, language, sound_group, include_pending, limit, offset.
func (h *DictionaryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := dictionary.FindInput{
		Language:       domain.LanguageSide(q.Get("language")),
		IncludePending: q.Get("include_pending") == "true",
		Limit:          queryInt(r, "limit"),
		Offset:         queryInt(r, "offset"),
	}
	if search := q.Get("search"); search != "" {
		input.Search = &search
	}
	if sg := q.Get("sound_group"); sg != "" {
		group := domain.SoundGroup(sg)
		input.SoundGroup = &group
	}

	entries, err := h.svc.FindEntries(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// Get handles GET /dictionary/{id}.
func (h *DictionaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

type createEntryRequest struct {
	MaayWord       string  `json:"maayWord"`
	Translation    string  `json:"translation"`
	PartOfSpeech   string  `json:"partOfSpeech"`
	SoundGroup     *string `json:"soundGroup"`
	ExampleMaay    *string `json:"exampleMaay"`
	ExampleEnglish *string `json:"exampleEnglish"`
	AudioURL       *string `json:"audioUrl"`
}

func (req createEntryRequest) toInput() dictionary.CreateInput {
	input := dictionary.CreateInput{
		MaayWord:       req.MaayWord,
		Translation:    req.Translation,
		PartOfSpeech:   domain.PartOfSpeech(req.PartOfSpeech),
		ExampleMaay:    req.ExampleMaay,
		ExampleEnglish: req.ExampleEnglish,
		AudioURL:       req.AudioURL,
	}
	if req.SoundGroup != nil {
		group := domain.SoundGroup(*req.SoundGroup)
		input.SoundGroup = &group
	}
	return input
}

// Create handles POST /dictionary.
func (h *DictionaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

type updateEntryRequest struct {
	MaayWord       *string `json:"maayWord"`
	Translation    *string `json:"translation"`
	PartOfSpeech   *string `json:"partOfSpeech"`
	SoundGroup     *string `json:"soundGroup"`
	ExampleMaay    *string `json:"exampleMaay"`
	ExampleEnglish *string `json:"exampleEnglish"`
	AudioURL       *string `json:"audioUrl"`
}

func (req updateEntryRequest) toPatch() domain.EntryPatch {
	patch := domain.EntryPatch{
		MaayWord:       req.MaayWord,
		Translation:    req.Translation,
		ExampleMaay:    req.ExampleMaay,
		ExampleEnglish: req.ExampleEnglish,
		AudioURL:       req.AudioURL,
	}
	if req.PartOfSpeech != nil {
		pos := domain.PartOfSpeech(*req.PartOfSpeech)
		patch.PartOfSpeech = &pos
	}
	if req.SoundGroup != nil {
		group := domain.SoundGroup(*req.SoundGroup)
		patch.SoundGroup = &group
	}
	return patch
}

// Update handles PUT /dictionary/{id}. An If-Match header makes the write
// conditional on the entry version.
func (h *DictionaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	expectedVersion, err := ifMatchVersion(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), dictionary.UpdateInput{
		EntryID:         id,
		Patch:           req.toPatch(),
		ExpectedVersion: expectedVersion,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /dictionary/{id} (admin reject).
func (h *DictionaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Verify handles POST /dictionary/{id}/verify (admin approve).
func (h *DictionaryHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	expectedVersion, err := ifMatchVersion(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.VerifyEntry(r.Context(), id, expectedVersion)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

type suggestEditRequest struct {
	MaayWord    *string `json:"maayWord"`
	Translation *string `json:"translation"`
	Reason      string  `json:"reason"`
}

// SuggestEdit handles POST /dictionary/{id}/suggest-edit.
func (h *DictionaryHandler) SuggestEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req suggestEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	suggestion, err := h.svc.SuggestEdit(r.Context(), dictionary.SuggestEditInput{
		EntryID:     id,
		MaayWord:    req.MaayWord,
		Translation: req.Translation,
		Reason:      req.Reason,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSuggestionResponse(suggestion))
}

// ListSuggestions handles GET /dictionary/suggestions (admin).
// Query: status, entry_id.
func (h *DictionaryHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	var status *domain.SuggestionStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.SuggestionStatus(s)
		status = &st
	}

	var entryID *uuid.UUID
	if raw := r.URL.Query().Get("entry_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("entry_id", "must be a valid UUID"))
			return
		}
		entryID = &id
	}

	suggestions, err := h.svc.ListSuggestions(r.Context(), status, entryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]suggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, toSuggestionResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}

type reviewRequest struct {
	Action string `json:"action"`
}

// ReviewSuggestion handles POST /dictionary/suggestions/{id}/review (admin).
func (h *DictionaryHandler) ReviewSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	suggestion, err := h.svc.ReviewSuggestion(r.Context(), dictionary.ReviewInput{
		SuggestionID: id,
		Action:       req.Action,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuggestionResponse(suggestion))
}
