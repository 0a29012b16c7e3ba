package domain

// PartOfSpeech represents the grammatical category of a dictionary entry.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection:
		return true
	}
	return false
}

// SoundGroup is the phonological classification of an Af Maay noun.
// The classical six groups plus prenasalized extensions.
type SoundGroup string

const (
	SoundGroupK  SoundGroup = "k"
	SoundGroupT  SoundGroup = "t"
	SoundGroupDH SoundGroup = "dh"
	SoundGroupN  SoundGroup = "n"
	SoundGroupB  SoundGroup = "b"
	SoundGroupR  SoundGroup = "r"
	SoundGroupMB SoundGroup = "mb"
	SoundGroupND SoundGroup = "nd"
	SoundGroupNG SoundGroup = "ng"
)

func (g SoundGroup) String() string { return string(g) }

func (g SoundGroup) IsValid() bool {
	switch g {
	case SoundGroupK, SoundGroupT, SoundGroupDH, SoundGroupN, SoundGroupB,
		SoundGroupR, SoundGroupMB, SoundGroupND, SoundGroupNG:
		return true
	}
	return false
}

// LanguageSide selects which side of an entry a text search inspects.
type LanguageSide string

const (
	LanguageSideMaay    LanguageSide = "maay"
	LanguageSideEnglish LanguageSide = "en"
	LanguageSideBoth    LanguageSide = "both"
)

func (s LanguageSide) String() string { return string(s) }

func (s LanguageSide) IsValid() bool {
	switch s {
	case LanguageSideMaay, LanguageSideEnglish, LanguageSideBoth:
		return true
	}
	return false
}

// SuggestionStatus represents the moderation state of an edit suggestion.
type SuggestionStatus string

const (
	SuggestionStatusPending   SuggestionStatus = "pending"
	SuggestionStatusApplied   SuggestionStatus = "applied"
	SuggestionStatusDismissed SuggestionStatus = "dismissed"
)

func (s SuggestionStatus) String() string { return string(s) }

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionStatusPending, SuggestionStatusApplied, SuggestionStatusDismissed:
		return true
	}
	return false
}

// GapStatus represents the lifecycle state of a vocabulary gap.
// Approval is monotonic: there is no transition out of approved.
type GapStatus string

const (
	GapStatusPending  GapStatus = "pending"
	GapStatusApproved GapStatus = "approved"
)

func (s GapStatus) String() string { return string(s) }

func (s GapStatus) IsValid() bool {
	switch s {
	case GapStatusPending, GapStatusApproved:
		return true
	}
	return false
}

// GrammarCategory classifies a grammar rule.
type GrammarCategory string

const (
	GrammarCategoryVerbMorphology    GrammarCategory = "verb_morphology"
	GrammarCategoryNominalMorphology GrammarCategory = "nominal_morphology"
	GrammarCategorySyntax            GrammarCategory = "syntax"
	GrammarCategoryPhonology         GrammarCategory = "phonology"
	GrammarCategoryDemonstratives    GrammarCategory = "demonstratives"
)

func (c GrammarCategory) String() string { return string(c) }

func (c GrammarCategory) IsValid() bool {
	switch c {
	case GrammarCategoryVerbMorphology, GrammarCategoryNominalMorphology,
		GrammarCategorySyntax, GrammarCategoryPhonology, GrammarCategoryDemonstratives:
		return true
	}
	return false
}

// Difficulty grades a grammar rule for learners.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
