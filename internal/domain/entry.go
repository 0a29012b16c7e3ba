package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single Af Maay / English dictionary record.
// Version is bumped on every write and guards concurrent moderation actions.
type Entry struct {
	ID             uuid.UUID
	MaayWord       string
	Translation    string
	PartOfSpeech   PartOfSpeech
	SoundGroup     *SoundGroup
	ExampleMaay    *string
	ExampleEnglish *string
	AudioURL       *string
	ContributorID  *uuid.UUID
	Verified       bool
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsPending returns true if the entry still awaits moderation.
func (e *Entry) IsPending() bool {
	return !e.Verified
}

// EntryPatch holds the fields an update or an applied suggestion may change.
// Nil fields are left untouched.
type EntryPatch struct {
	MaayWord       *string
	Translation    *string
	PartOfSpeech   *PartOfSpeech
	SoundGroup     *SoundGroup
	ExampleMaay    *string
	ExampleEnglish *string
	AudioURL       *string
}

// IsEmpty returns true if the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.MaayWord == nil && p.Translation == nil && p.PartOfSpeech == nil &&
		p.SoundGroup == nil && p.ExampleMaay == nil && p.ExampleEnglish == nil &&
		p.AudioURL == nil
}

// EditSuggestion is a non-privileged contributor's proposed change to an
// existing entry. Applying it patches the entry; dismissing it leaves the
// entry untouched. Both are terminal.
type EditSuggestion struct {
	ID          uuid.UUID
	EntryID     uuid.UUID
	SuggesterID uuid.UUID
	MaayWord    *string
	Translation *string
	Reason      string
	Status      SuggestionStatus
	CreatedAt   time.Time
}

// Patch returns the entry patch this suggestion proposes.
func (s *EditSuggestion) Patch() EntryPatch {
	return EntryPatch{
		MaayWord:    s.MaayWord,
		Translation: s.Translation,
	}
}
