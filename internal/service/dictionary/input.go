package dictionary

import (
	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

// FindInput holds parameters for the entry search operation.
type FindInput struct {
	Search         *string
	Language       domain.LanguageSide
	SoundGroup     *domain.SoundGroup
	IncludePending bool
	Limit          int
	Offset         int
}

// Validate validates the find input.
func (i FindInput) Validate() error {
	var errs []domain.FieldError

	if i.Language != "" && !i.Language.IsValid() {
		errs = append(errs, domain.FieldError{Field: "language", Message: "must be maay, en, or both"})
	}
	if i.SoundGroup != nil && !i.SoundGroup.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sound_group", Message: "unknown sound group"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds parameters for the entry create operation.
type CreateInput struct {
	MaayWord       string
	Translation    string
	PartOfSpeech   domain.PartOfSpeech
	SoundGroup     *domain.SoundGroup
	ExampleMaay    *string
	ExampleEnglish *string
	AudioURL       *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.MaayWord == "" {
		errs = append(errs, domain.FieldError{Field: "maay_word", Message: "required"})
	} else if len(i.MaayWord) > 200 {
		errs = append(errs, domain.FieldError{Field: "maay_word", Message: "too long"})
	}

	if i.Translation == "" {
		errs = append(errs, domain.FieldError{Field: "english_translation", Message: "required"})
	} else if len(i.Translation) > 500 {
		errs = append(errs, domain.FieldError{Field: "english_translation", Message: "too long"})
	}

	if !i.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "unknown part of speech"})
	}
	if i.SoundGroup != nil && !i.SoundGroup.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sound_group", Message: "unknown sound group"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for the entry update operation.
// ExpectedVersion, when set, makes the write conditional.
type UpdateInput struct {
	EntryID         uuid.UUID
	Patch           domain.EntryPatch
	ExpectedVersion *int
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "patch", Message: "at least one field must change"})
	}
	if i.Patch.MaayWord != nil && *i.Patch.MaayWord == "" {
		errs = append(errs, domain.FieldError{Field: "maay_word", Message: "must not be empty"})
	}
	if i.Patch.Translation != nil && *i.Patch.Translation == "" {
		errs = append(errs, domain.FieldError{Field: "english_translation", Message: "must not be empty"})
	}
	if i.Patch.PartOfSpeech != nil && !i.Patch.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "unknown part of speech"})
	}
	if i.Patch.SoundGroup != nil && !i.Patch.SoundGroup.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sound_group", Message: "unknown sound group"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SuggestEditInput holds parameters for the community edit suggestion
// operation.
type SuggestEditInput struct {
	EntryID     uuid.UUID
	MaayWord    *string
	Translation *string
	Reason      string
}

// Validate validates the suggest edit input.
func (i SuggestEditInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.MaayWord == nil && i.Translation == nil {
		errs = append(errs, domain.FieldError{Field: "suggestion", Message: "at least one field must change"})
	}
	if i.MaayWord != nil && *i.MaayWord == "" {
		errs = append(errs, domain.FieldError{Field: "maay_word", Message: "must not be empty"})
	}
	if i.Translation != nil && *i.Translation == "" {
		errs = append(errs, domain.FieldError{Field: "english_translation", Message: "must not be empty"})
	}
	if i.Reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	} else if len(i.Reason) > 1000 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Review actions.
const (
	ReviewActionApply   = "apply"
	ReviewActionDismiss = "dismiss"
)

// ReviewInput holds parameters for the suggestion review operation.
type ReviewInput struct {
	SuggestionID uuid.UUID
	Action       string
}

// Validate validates the review input.
func (i ReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.SuggestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "suggestion_id", Message: "required"})
	}
	if i.Action != ReviewActionApply && i.Action != ReviewActionDismiss {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be apply or dismiss"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkImportInput holds parameters for the bulk import operation.
type BulkImportInput struct {
	Entries []CreateInput
}
