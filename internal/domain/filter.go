package domain

// EntryFilter contains search/filter parameters for dictionary queries.
// All active filters are conjunctive.
type EntryFilter struct {
	// Search is a case-insensitive substring match against the side(s)
	// selected by Language. Nil or empty means no text filter.
	Search *string

	// Language selects which entry side Search inspects. Defaults to both.
	Language LanguageSide

	// SoundGroup restricts results to a single phonological group.
	SoundGroup *SoundGroup

	// VerifiedOnly restricts results to moderated entries. Non-privileged
	// callers are forced to true by the service layer.
	VerifiedOnly bool

	Limit  int
	Offset int
}

// GapFilter contains filter parameters for vocabulary gap queries.
type GapFilter struct {
	Status *GapStatus
	Domain *string
	Limit  int
}

// GrammarFilter contains filter parameters for grammar rule queries.
type GrammarFilter struct {
	Category   *GrammarCategory
	Difficulty *Difficulty
	Search     *string
}
