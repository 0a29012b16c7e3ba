package domain

import (
	"time"

	"github.com/google/uuid"
)

// GrammarRule is an admin-authored lesson on a single point of Af Maay
// grammar. Rules have no update or delete path.
type GrammarRule struct {
	ID         uuid.UUID
	Category   GrammarCategory
	Title      string
	Content    string
	Examples   []GrammarExample
	Difficulty Difficulty
	CreatedAt  time.Time
}

// GrammarExample is a Maay/English sentence pair illustrating a rule.
type GrammarExample struct {
	Maay    string `json:"maay"`
	English string `json:"english"`
}
