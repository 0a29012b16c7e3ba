package rest

import (
	"time"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

type entryResponse struct {
	ID             string    `json:"id"`
	MaayWord       string    `json:"maayWord"`
	Translation    string    `json:"translation"`
	PartOfSpeech   string    `json:"partOfSpeech"`
	SoundGroup     *string   `json:"soundGroup,omitempty"`
	ExampleMaay    *string   `json:"exampleMaay,omitempty"`
	ExampleEnglish *string   `json:"exampleEnglish,omitempty"`
	AudioURL       *string   `json:"audioUrl,omitempty"`
	ContributorID  *string   `json:"contributorId,omitempty"`
	Verified       bool      `json:"verified"`
	Version        int       `json:"version"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toEntryResponse(e *domain.Entry) entryResponse {
	resp := entryResponse{
		ID:             e.ID.String(),
		MaayWord:       e.MaayWord,
		Translation:    e.Translation,
		PartOfSpeech:   e.PartOfSpeech.String(),
		ExampleMaay:    e.ExampleMaay,
		ExampleEnglish: e.ExampleEnglish,
		AudioURL:       e.AudioURL,
		Verified:       e.Verified,
		Version:        e.Version,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.SoundGroup != nil {
		sg := e.SoundGroup.String()
		resp.SoundGroup = &sg
	}
	if e.ContributorID != nil {
		id := e.ContributorID.String()
		resp.ContributorID = &id
	}
	return resp
}

func toEntryResponses(entries []*domain.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

type suggestionResponse struct {
	ID          string    `json:"id"`
	EntryID     string    `json:"entryId"`
	SuggesterID string    `json:"suggesterId"`
	MaayWord    *string   `json:"maayWord,omitempty"`
	Translation *string   `json:"translation,omitempty"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toSuggestionResponse(s *domain.EditSuggestion) suggestionResponse {
	return suggestionResponse{
		ID:          s.ID.String(),
		EntryID:     s.EntryID.String(),
		SuggesterID: s.SuggesterID.String(),
		MaayWord:    s.MaayWord,
		Translation: s.Translation,
		Reason:      s.Reason,
		Status:      s.Status.String(),
		CreatedAt:   s.CreatedAt,
	}
}

type gapResponse struct {
	ID            string    `json:"id"`
	EnglishTerm   string    `json:"englishTerm"`
	Context       string    `json:"context,omitempty"`
	Domain        string    `json:"domain,omitempty"`
	Frequency     int       `json:"frequency"`
	SuggestedMaay *string   `json:"suggestedMaay,omitempty"`
	Status        string    `json:"status"`
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toGapResponse(g *domain.VocabularyGap) gapResponse {
	return gapResponse{
		ID:            g.ID.String(),
		EnglishTerm:   g.EnglishTerm,
		Context:       g.Context,
		Domain:        g.Domain,
		Frequency:     g.Frequency,
		SuggestedMaay: g.SuggestedMaay,
		Status:        g.Status.String(),
		Version:       g.Version,
		CreatedAt:     g.CreatedAt,
	}
}

type grammarResponse struct {
	ID         string                  `json:"id"`
	Category   string                  `json:"category"`
	Title      string                  `json:"title"`
	Content    string                  `json:"content"`
	Examples   []domain.GrammarExample `json:"examples,omitempty"`
	Difficulty string                  `json:"difficulty"`
	CreatedAt  time.Time               `json:"createdAt"`
}

func toGrammarResponse(g *domain.GrammarRule) grammarResponse {
	return grammarResponse{
		ID:         g.ID.String(),
		Category:   g.Category.String(),
		Title:      g.Title,
		Content:    g.Content,
		Examples:   g.Examples,
		Difficulty: g.Difficulty.String(),
		CreatedAt:  g.CreatedAt,
	}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role.String(),
	}
}
