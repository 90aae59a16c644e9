package question

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/askme-backend/internal/domain"
)

// AskInput is the raw question form.
type AskInput struct {
	Title string
	Text  string
	Tags  string // comma-separated
}

// Draft is a question that passed validation.
type Draft struct {
	Title string
	Text  string
	Tags  []string
}

// Validate checks all fields, collects all errors and returns the cleaned draft.
func (i AskInput) Validate() (Draft, error) {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case n < domain.MinQuestionTitle:
		errs = append(errs, domain.FieldError{Field: "title", Message: "at least 10 characters"})
	case n > domain.MaxQuestionTitle:
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 150 characters"})
	}

	text := strings.TrimSpace(i.Text)
	switch n := utf8.RuneCountInString(text); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	case n < domain.MinQuestionText:
		errs = append(errs, domain.FieldError{Field: "text", Message: "at least 30 characters"})
	}

	tags, tagErr := domain.ParseTags(i.Tags)
	if tagErr != nil {
		errs = append(errs, tagErr.Errors...)
	}

	if len(errs) > 0 {
		return Draft{}, &domain.ValidationError{Errors: errs}
	}
	return Draft{Title: title, Text: text, Tags: tags}, nil
}

// AnswerInput is the raw answer form.
type AnswerInput struct {
	Text string
}

// Validate checks the answer text and returns it trimmed.
func (i AnswerInput) Validate() (string, error) {
	text := strings.TrimSpace(i.Text)
	switch n := utf8.RuneCountInString(text); {
	case n == 0:
		return "", domain.NewValidationError("text", "required")
	case n < domain.MinAnswerText:
		return "", domain.NewValidationError("text", "at least 10 characters")
	}
	return text, nil
}
