package form

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

const (
	minTitleLength        = 3
	minQuestionTextLength = 5
	minChoiceOptions      = 2
)

// CreateInput holds parameters for form creation. A nil Questions slice
// means the request did not carry an array at all.
type CreateInput struct {
	Title     string
	Questions []QuestionInput
}

// QuestionInput is one candidate question. Options is nil when the request
// did not carry an array of options.
type QuestionInput struct {
	Text    string
	Type    string
	Options []string
}

// Validate returns every creation error in order: title, question count,
// then each question's text, type, option count and blank options.
// Text that PostgreSQL cannot store (NUL, invalid UTF-8) is rejected here.
// A non-array Questions yields only its own error after the title check.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(strings.TrimSpace(i.Title)) < minTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title must be at least 3 characters long"})
	} else if !domain.IsStorableText(i.Title) {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title contains invalid characters"})
	}

	if i.Questions == nil {
		errs = append(errs, domain.FieldError{Field: "questions", Message: "Questions must be an array"})
		return domain.NewValidationErrors(errs)
	}

	if n := len(i.Questions); n < domain.MinQuestions || n > domain.MaxQuestions {
		errs = append(errs, domain.FieldError{Field: "questions", Message: "Forms must have between 3 and 5 questions"})
	}

	for qi, q := range i.Questions {
		n := qi + 1
		field := fmt.Sprintf("questions[%d]", qi)

		if utf8.RuneCountInString(strings.TrimSpace(q.Text)) < minQuestionTextLength {
			errs = append(errs, domain.FieldError{
				Field:   field + ".text",
				Message: fmt.Sprintf("Question %d: Question text must be at least 5 characters long", n),
			})
		} else if !domain.IsStorableText(q.Text) {
			errs = append(errs, domain.FieldError{
				Field:   field + ".text",
				Message: fmt.Sprintf("Question %d: Question text contains invalid characters", n),
			})
		}

		qt := domain.QuestionType(q.Type)
		if !qt.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   field + ".type",
				Message: fmt.Sprintf("Question %d: Type must be either 'text' or 'multiple-choice'", n),
			})
		}

		if qt != domain.QuestionTypeMultipleChoice {
			continue
		}
		if len(q.Options) < minChoiceOptions {
			errs = append(errs, domain.FieldError{
				Field:   field + ".options",
				Message: fmt.Sprintf("Question %d: Multiple-choice questions must have at least 2 options", n),
			})
			continue
		}
		for oi, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s.options[%d]", field, oi),
					Message: fmt.Sprintf("Question %d, Option %d: Option text cannot be empty", n, oi+1),
				})
			} else if !domain.IsStorableText(opt) {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s.options[%d]", field, oi),
					Message: fmt.Sprintf("Question %d, Option %d: Option text contains invalid characters", n, oi+1),
				})
			}
		}
	}

	return domain.NewValidationErrors(errs)
}

// questions converts validated input into stored questions: text and
// options are trimmed and only multiple-choice questions keep options.
func (i CreateInput) questions() []domain.Question {
	out := make([]domain.Question, len(i.Questions))
	for qi, q := range i.Questions {
		out[qi] = domain.Question{
			Text: strings.TrimSpace(q.Text),
			Type: domain.QuestionType(q.Type),
		}
		if out[qi].IsMultipleChoice() {
			opts := make([]string, len(q.Options))
			for oi, o := range q.Options {
				opts[oi] = strings.TrimSpace(o)
			}
			out[qi].Options = opts
		}
	}
	return out
}

// SubmitInput holds a public submission. A nil Answers slice means the
// request did not carry an array.
type SubmitInput struct {
	Answers []AnswerInput
}

// AnswerInput is one candidate answer as received. QuestionIndex is nil when
// the value was missing or not a number; Answer is nil when missing or null.
type AnswerInput struct {
	QuestionIndex *float64
	Answer        *string
}

// Validate performs the structural checks only. Matching the answers
// against the form happens inside Submit.
func (i SubmitInput) Validate() error {
	if i.Answers == nil {
		return domain.NewValidationError("answers", "Answers must be an array")
	}

	var errs []domain.FieldError
	for ai, a := range i.Answers {
		n := ai + 1
		if a.QuestionIndex == nil || *a.QuestionIndex < 0 {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("answers[%d].questionIndex", ai),
				Message: fmt.Sprintf("Answer %d: Invalid question index", n),
			})
		}
		if a.Answer == nil || *a.Answer == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("answers[%d].answer", ai),
				Message: fmt.Sprintf("Answer %d: Answer cannot be empty", n),
			})
		} else if !domain.IsStorableText(*a.Answer) {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("answers[%d].answer", ai),
				Message: fmt.Sprintf("Answer %d: Answer contains invalid characters", n),
			})
		}
	}

	return domain.NewValidationErrors(errs)
}

// match enforces the submission rules against the form's current questions
// and returns the answers to store. The first violated rule wins.
func (i SubmitInput) match(questions []domain.Question) ([]domain.Answer, error) {
	if len(i.Answers) != len(questions) {
		return nil, ErrIncompleteAnswers
	}

	answers := make([]domain.Answer, len(i.Answers))
	for qi, q := range questions {
		a := i.Answers[qi]
		if *a.QuestionIndex != float64(qi) {
			return nil, ErrAnswerOrder
		}
		if q.IsMultipleChoice() && !q.HasOption(*a.Answer) {
			return nil, ErrInvalidChoice
		}
		answers[qi] = domain.Answer{QuestionIndex: qi, Answer: *a.Answer}
	}
	return answers, nil
}
