package domain

import "time"

// Question count bounds for every form.
const (
	MinQuestions = 3
	MaxQuestions = 5
)

// QuestionType is the kind of answer a question accepts.
type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
)

// IsValid reports whether t is a supported question type.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeText, QuestionTypeMultipleChoice:
		return true
	}
	return false
}

func (t QuestionType) String() string { return string(t) }

// Question is one entry of a form. Its position in Form.Questions is its
// question index.
type Question struct {
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// IsMultipleChoice reports whether answers are restricted to Options.
func (q Question) IsMultipleChoice() bool {
	return q.Type == QuestionTypeMultipleChoice
}

// HasOption reports whether value exactly equals one of the options.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o == value {
			return true
		}
	}
	return false
}

// Form is a survey owned by exactly one user.
type Form struct {
	ID            ID
	PublicID      string
	CreatedBy     ID
	Title         string
	Questions     []Question
	ResponseCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOwnedBy reports whether userID created the form.
func (f *Form) IsOwnedBy(userID ID) bool {
	return f.CreatedBy == userID
}

// Answer binds a value to the question at QuestionIndex.
type Answer struct {
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
}

// Response is one append-only submission against a form.
type Response struct {
	Answers     []Answer
	SubmittedAt time.Time
}

// AnswerFor returns the first answer for question index i. Duplicates after
// the first are ignored.
func (r Response) AnswerFor(i int) (Answer, bool) {
	for _, a := range r.Answers {
		if a.QuestionIndex == i {
			return a, true
		}
	}
	return Answer{}, false
}
