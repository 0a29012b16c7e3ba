package translation

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/internal/service/gap"
)

// Translation directions.
const (
	LangMaay    = "maay"
	LangEnglish = "english"
)

const maxTranslateTextLen = 2000

// The chat collaborator is instructed to wrap terms it has no Af Maay
// rendering for in this marker so they can be harvested into the gap queue.
var untranslatedRE = regexp.MustCompile(`\(untranslated:\s*([^)]+)\)`)

// TranslateInput holds parameters for the translate operation.
type TranslateInput struct {
	Text   string
	Source string
	Target string
}

// Validate validates the translate input.
func (i TranslateInput) Validate() error {
	var errs []domain.FieldError

	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(i.Text) > maxTranslateTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	validDirection := (i.Source == LangMaay && i.Target == LangEnglish) ||
		(i.Source == LangEnglish && i.Target == LangMaay)
	if !validDirection {
		errs = append(errs, domain.FieldError{
			Field:   "source",
			Message: "direction must be maay->english or english->maay",
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TranslateResult carries the translation and any English terms the
// collaborator could not render in Af Maay.
type TranslateResult struct {
	Translation string
	GapTerms    []string
}

// Translate translates text between Af Maay and English. The prompt is
// grounded in verified dictionary entries; terms the collaborator marks as
// untranslated are recorded as vocabulary gaps. Gap recording is best-effort
// and never fails the translation itself.
func (s *Service) Translate(ctx context.Context, input TranslateInput) (*TranslateResult, error) {
	input.Text = strings.TrimSpace(input.Text)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.ListVerified(ctx, s.cfg.PromptContextLimit)
	if err != nil {
		return nil, fmt.Errorf("load prompt context: %w", err)
	}

	system := buildSystemPrompt(entries, input.Source, input.Target)

	raw, err := s.chat.Complete(ctx, system, input.Text)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	terms := harvestGapTerms(raw)
	for _, term := range terms {
		if _, recErr := s.gaps.Record(ctx, gap.RecordInput{
			EnglishTerm: term,
			Context:     input.Text,
			Domain:      "translation",
		}); recErr != nil {
			s.log.WarnContext(ctx, "failed to record vocabulary gap",
				slog.String("term", term),
				slog.String("error", recErr.Error()))
		}
	}

	// Markers are an internal protocol with the collaborator; readers get
	// the bare term.
	translation := untranslatedRE.ReplaceAllString(raw, "$1")

	s.log.InfoContext(ctx, "text translated",
		slog.String("direction", input.Source+"->"+input.Target),
		slog.Int("gap_terms", len(terms)))

	return &TranslateResult{
		Translation: strings.TrimSpace(translation),
		GapTerms:    terms,
	}, nil
}

func buildSystemPrompt(entries []*domain.Entry, source, target string) string {
	var b strings.Builder

	b.WriteString("You are a translator between Af Maay (a Somali language) and English.\n")
	fmt.Fprintf(&b, "Translate the user's text from %s to %s.\n", source, target)
	b.WriteString("Use the dictionary below as the authoritative glossary. ")
	b.WriteString("When an English term has no Af Maay equivalent in the dictionary ")
	b.WriteString("and you cannot translate it reliably, keep it in the output wrapped ")
	b.WriteString("exactly as (untranslated: term).\n")
	b.WriteString("Respond with the translation only.\n\nDictionary:\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "%s = %s\n", e.MaayWord, e.Translation)
	}

	return b.String()
}

// harvestGapTerms extracts marked terms, deduplicated on the normalized form,
// keeping the first-seen spelling.
func harvestGapTerms(text string) []string {
	matches := untranslatedRE.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	terms := make([]string, 0, len(matches))
	for _, m := range matches {
		term := strings.TrimSpace(m[1])
		norm := domain.NormalizeTerm(term)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		terms = append(terms, term)
	}
	return terms
}
