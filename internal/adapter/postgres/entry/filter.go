package entry

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalizeFilter applies defaults and clamps values.
func normalizeFilter(f domain.EntryFilter) domain.EntryFilter {
	if !f.Language.IsValid() {
		f.Language = domain.LanguageSideBoth
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// applyFilter adds WHERE clauses for every active filter. Filters are
// conjunctive: each active filter narrows the result set.
func applyFilter(b sq.SelectBuilder, f domain.EntryFilter) sq.SelectBuilder {
	if f.VerifiedOnly {
		b = b.Where(sq.Eq{"is_verified": true})
	}

	if f.SoundGroup != nil {
		b = b.Where(sq.Eq{"sound_group": f.SoundGroup.String()})
	}

	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		switch f.Language {
		case domain.LanguageSideMaay:
			b = b.Where(sq.ILike{"maay_word": pattern})
		case domain.LanguageSideEnglish:
			b = b.Where(sq.ILike{"english_translation": pattern})
		default:
			b = b.Where(sq.Or{
				sq.ILike{"maay_word": pattern},
				sq.ILike{"english_translation": pattern},
			})
		}
	}

	return b
}
