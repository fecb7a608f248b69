package election

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// CreateInput holds parameters for creating an election.
type CreateInput struct {
	Title       string
	Description string
	StartAt     time.Time
	EndAt       time.Time
}

func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.StartAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_at", Message: "required"})
	}
	if i.EndAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_at", Message: "required"})
	}
	if !i.StartAt.IsZero() && !i.EndAt.IsZero() && !i.EndAt.After(i.StartAt) {
		errs = append(errs, domain.FieldError{Field: "end_at", Message: "must be after start_at"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddCandidateInput holds parameters for adding a candidate.
type AddCandidateInput struct {
	ElectionID  uuid.UUID
	Name        string
	Party       string
	Description string
}

func (i AddCandidateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Party) > 255 {
		errs = append(errs, domain.FieldError{Field: "party", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
