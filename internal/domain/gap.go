package domain

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyGap records an English term the translator could not render in
// Af Maay. Recurrences of the same normalized term increment Frequency
// instead of creating a new record.
type VocabularyGap struct {
	ID             uuid.UUID
	EnglishTerm    string
	TermNormalized string
	Context        string
	Domain         string
	Frequency      int
	SuggestedMaay  *string
	Status         GapStatus
	Version        int
	CreatedAt      time.Time
}

// HasSuggestion returns true if a non-empty candidate rendering is attached.
func (g *VocabularyGap) HasSuggestion() bool {
	return g.SuggestedMaay != nil && *g.SuggestedMaay != ""
}

// PromotedEntry builds the verified dictionary entry an approved gap turns
// into: the candidate becomes the Maay word, the term the translation.
func (g *VocabularyGap) PromotedEntry(now time.Time) *Entry {
	return &Entry{
		ID:           uuid.New(),
		MaayWord:     *g.SuggestedMaay,
		Translation:  g.EnglishTerm,
		PartOfSpeech: PartOfSpeechNoun,
		Verified:     true,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
