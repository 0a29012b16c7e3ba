package gap

import (
	"github.com/google/uuid"

	"github.com/maayplatform/afmaay-backend/internal/domain"
)

// RecordInput holds parameters for recording a vocabulary gap.
type RecordInput struct {
	EnglishTerm string
	Context     string
	Domain      string
}

// Validate validates the record input.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.EnglishTerm == "" {
		errs = append(errs, domain.FieldError{Field: "english_term", Message: "required"})
	} else if len(i.EnglishTerm) > 200 {
		errs = append(errs, domain.FieldError{Field: "english_term", Message: "too long"})
	}
	if len(i.Context) > 1000 {
		errs = append(errs, domain.FieldError{Field: "context", Message: "too long"})
	}
	if len(i.Domain) > 100 {
		errs = append(errs, domain.FieldError{Field: "domain", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for listing vocabulary gaps.
type ListInput struct {
	Status *domain.GapStatus
	Domain *string
	Limit  int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return nil
}

// SuggestInput holds parameters for attaching a candidate rendering.
type SuggestInput struct {
	GapID         uuid.UUID
	SuggestedMaay string
}

// Validate validates the suggest input.
func (i SuggestInput) Validate() error {
	var errs []domain.FieldError

	if i.GapID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "gap_id", Message: "required"})
	}
	if i.SuggestedMaay == "" {
		errs = append(errs, domain.FieldError{Field: "suggested_maay", Message: "required"})
	} else if len(i.SuggestedMaay) > 200 {
		errs = append(errs, domain.FieldError{Field: "suggested_maay", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveInput holds parameters for approving a gap.
// ExpectedVersion, when set, makes the approval conditional.
type ApproveInput struct {
	GapID           uuid.UUID
	ExpectedVersion *int
}
