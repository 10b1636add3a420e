package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
	"github.com/Sweetdevil144/feedback-platform/internal/service/form"
)

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID.Hex(), Name: u.Name, Email: u.Email}
}

// questionResponse carries the question text under both "text" and the
// older "questionText" key that existing clients read.
type questionResponse struct {
	Text         string   `json:"text"`
	QuestionText string   `json:"questionText"`
	Type         string   `json:"type"`
	Options      []string `json:"options,omitempty"`
}

func toQuestionResponses(qs []domain.Question) []questionResponse {
	out := make([]questionResponse, len(qs))
	for i, q := range qs {
		out[i] = questionResponse{
			Text:         q.Text,
			QuestionText: q.Text,
			Type:         q.Type.String(),
			Options:      q.Options,
		}
	}
	return out
}

// ownedFormResponse is the creator's view of a form.
type ownedFormResponse struct {
	ID             string             `json:"id"`
	PublicID       string             `json:"publicId"`
	Title          string             `json:"title"`
	Questions      []questionResponse `json:"questions"`
	CreatedBy      string             `json:"createdBy"`
	ResponsesCount int                `json:"responsesCount"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func toOwnedFormResponse(f *domain.Form) ownedFormResponse {
	return ownedFormResponse{
		ID:             f.ID.Hex(),
		PublicID:       f.PublicID,
		Title:          f.Title,
		Questions:      toQuestionResponses(f.Questions),
		CreatedBy:      f.CreatedBy.Hex(),
		ResponsesCount: f.ResponseCount,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

// publicFormResponse is what respondents see; id is the public id.
type publicFormResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Questions      []questionResponse `json:"questions"`
	ResponsesCount int                `json:"responsesCount"`
}

func toPublicFormResponse(f *domain.Form) publicFormResponse {
	return publicFormResponse{
		ID:             f.PublicID,
		Title:          f.Title,
		Questions:      toQuestionResponses(f.Questions),
		ResponsesCount: f.ResponseCount,
	}
}

type answerResponse struct {
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
}

type responseResponse struct {
	Answers     []answerResponse `json:"answers"`
	SubmittedAt string           `json:"submittedAt"`
}

func toResponseResponses(rs []domain.Response) []responseResponse {
	out := make([]responseResponse, len(rs))
	for i, r := range rs {
		answers := make([]answerResponse, len(r.Answers))
		for j, a := range r.Answers {
			answers[j] = answerResponse{QuestionIndex: a.QuestionIndex, Answer: a.Answer}
		}
		out[i] = responseResponse{Answers: answers}
		if !r.SubmittedAt.IsZero() {
			out[i].SubmittedAt = r.SubmittedAt.UTC().Format(form.SubmittedAtLayout)
		}
	}
	return out
}

type questionStatResponse struct {
	Text          string         `json:"text"`
	QuestionText  string         `json:"questionText"`
	Type          string         `json:"type"`
	Options       []string       `json:"options,omitempty"`
	Counts        map[string]int `json:"counts,omitempty"`
	ResponseCount *int           `json:"responseCount,omitempty"`
}

type summaryResponse struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Questions      []questionResponse     `json:"questions"`
	ResponsesCount int                    `json:"responsesCount"`
	QuestionStats  []questionStatResponse `json:"questionStats"`
}

func toSummaryResponse(s *form.Summary) summaryResponse {
	stats := make([]questionStatResponse, len(s.Stats))
	for i, st := range s.Stats {
		stats[i] = questionStatResponse{
			Text:         st.Text,
			QuestionText: st.Text,
			Type:         st.Type.String(),
		}
		if st.Type == domain.QuestionTypeMultipleChoice {
			stats[i].Options = st.Options
			stats[i].Counts = st.Counts
		} else {
			n := st.ResponseCount
			stats[i].ResponseCount = &n
		}
	}
	return summaryResponse{
		ID:             s.PublicID,
		Title:          s.Title,
		Questions:      toQuestionResponses(s.Questions),
		ResponsesCount: s.ResponseCount,
		QuestionStats:  stats,
	}
}

// Request bodies keep loosely typed fields as raw JSON so that a wrong
// shape becomes a validation message instead of a decode failure.

type createFormRequest struct {
	Title     json.RawMessage `json:"title"`
	Questions json.RawMessage `json:"questions"`
}

type questionRequest struct {
	Text         json.RawMessage `json:"text"`
	QuestionText json.RawMessage `json:"questionText"`
	Type         json.RawMessage `json:"type"`
	Options      json.RawMessage `json:"options"`
}

func (req createFormRequest) toInput() form.CreateInput {
	input := form.CreateInput{Title: stringOf(req.Title)}

	items, ok := arrayOf(req.Questions)
	if !ok {
		return input
	}
	input.Questions = make([]form.QuestionInput, len(items))
	for i, item := range items {
		var q questionRequest
		if err := json.Unmarshal(item, &q); err != nil {
			continue
		}
		text := stringOf(q.Text)
		if text == "" {
			text = stringOf(q.QuestionText)
		}
		input.Questions[i] = form.QuestionInput{
			Text:    text,
			Type:    stringOf(q.Type),
			Options: optionsOf(q.Options),
		}
	}
	return input
}

type submitRequest struct {
	Answers json.RawMessage `json:"answers"`
}

type answerRequest struct {
	QuestionIndex json.RawMessage `json:"questionIndex"`
	Answer        json.RawMessage `json:"answer"`
}

func (req submitRequest) toInput() form.SubmitInput {
	var input form.SubmitInput

	items, ok := arrayOf(req.Answers)
	if !ok {
		return input
	}
	input.Answers = make([]form.AnswerInput, len(items))
	for i, item := range items {
		var a answerRequest
		if err := json.Unmarshal(item, &a); err != nil {
			continue
		}
		input.Answers[i] = form.AnswerInput{
			QuestionIndex: numberOf(a.QuestionIndex),
			Answer:        answerOf(a.Answer),
		}
	}
	return input
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// arrayOf splits a JSON array into its elements. It reports false for any
// other JSON value, including null and an absent field.
func arrayOf(raw json.RawMessage) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, true
}

// stringOf returns the value of a JSON string, or "" for anything else.
func stringOf(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func numberOf(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return &f
}

// answerOf keeps strings as-is and renders other non-null values as their
// JSON text. Null and absent answers yield nil.
func answerOf(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	s = string(raw)
	return &s
}

// optionsOf returns nil when options is not an array. Non-string entries
// are kept as their JSON text.
func optionsOf(raw json.RawMessage) []string {
	items, ok := arrayOf(raw)
	if !ok {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		if v := answerOf(item); v != nil {
			out[i] = *v
		}
	}
	return out
}
