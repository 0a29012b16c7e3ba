// Package grammar implements the grammar reference business logic.
package grammar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
	"github.com/maayplatform/afmaay-backend/pkg/ctxutil"
)

type grammarRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GrammarRule, error)
	Create(ctx context.Context, rule *domain.GrammarRule) (*domain.GrammarRule, error)
	List(ctx context.Context, f domain.GrammarFilter) ([]*domain.GrammarRule, error)
}

// Service implements the grammar reference business logic.
type Service struct {
	log   *slog.Logger
	rules grammarRepo
}

// NewService creates a new grammar service.
func NewService(logger *slog.Logger, rules grammarRepo) *Service {
	return &Service{
		log:   logger.With("service", "grammar"),
		rules: rules,
	}
}

// CreateInput holds parameters for the rule create operation.
type CreateInput struct {
	Category   domain.GrammarCategory
	Title      string
	Content    string
	Examples   []domain.GrammarExample
	Difficulty domain.Difficulty
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}
	for idx, ex := range i.Examples {
		if ex.Maay == "" || ex.English == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("examples[%d]", idx),
				Message: "both sides required",
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for the rule list operation.
type ListInput struct {
	Category   *domain.GrammarCategory
	Difficulty *domain.Difficulty
	Search     *string
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create adds a new grammar rule. Admin only.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.GrammarRule, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rule := &domain.GrammarRule{
		ID:         uuid.New(),
		Category:   input.Category,
		Title:      input.Title,
		Content:    input.Content,
		Examples:   input.Examples,
		Difficulty: input.Difficulty,
		CreatedAt:  time.Now(),
	}

	created, err := s.rules.Create(ctx, rule)
	if err != nil {
		return nil, fmt.Errorf("create grammar rule: %w", err)
	}

	s.log.InfoContext(ctx, "grammar rule created",
		slog.String("rule_id", created.ID.String()),
		slog.String("category", created.Category.String()))

	return created, nil
}

// Get returns a single rule by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.GrammarRule, error) {
	return s.rules.GetByID(ctx, id)
}

// List returns rules matching the filter.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.GrammarRule, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var search *string
	if input.Search != nil {
		trimmed := strings.TrimSpace(*input.Search)
		if trimmed != "" {
			search = &trimmed
		}
	}

	return s.rules.List(ctx, domain.GrammarFilter{
		Category:   input.Category,
		Difficulty: input.Difficulty,
		Search:     search,
	})
}
