package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

// QuestionStat aggregates the answers given to one question.
// Options and Counts are set for multiple-choice questions, ResponseCount
// for text questions.
type QuestionStat struct {
	Text          string
	Type          domain.QuestionType
	Options       []string
	Counts        map[string]int
	ResponseCount int
}

// Summary is the per-question report of a form.
type Summary struct {
	PublicID      string
	Title         string
	Questions     []domain.Question
	ResponseCount int
	Stats         []QuestionStat
}

// Summarize computes per-question statistics in question order.
//
// For a multiple-choice question every declared option starts at zero and
// each response adds one to the option its first answer for that question
// names; values that are not a declared option are ignored. For a text
// question it counts responses whose first matching answer is non-blank.
func Summarize(f domain.Form, responses []domain.Response) Summary {
	stats := make([]QuestionStat, len(f.Questions))

	for qi, q := range f.Questions {
		stat := QuestionStat{Text: q.Text, Type: q.Type}

		if q.IsMultipleChoice() {
			stat.Options = q.Options
			stat.Counts = make(map[string]int, len(q.Options))
			for _, o := range q.Options {
				stat.Counts[o] = 0
			}
			for _, r := range responses {
				a, ok := r.AnswerFor(qi)
				if !ok {
					continue
				}
				if _, tracked := stat.Counts[a.Answer]; tracked {
					stat.Counts[a.Answer]++
				}
			}
		} else {
			for _, r := range responses {
				if a, ok := r.AnswerFor(qi); ok && strings.TrimSpace(a.Answer) != "" {
					stat.ResponseCount++
				}
			}
		}

		stats[qi] = stat
	}

	return Summary{
		PublicID:      f.PublicID,
		Title:         f.Title,
		Questions:     f.Questions,
		ResponseCount: len(responses),
		Stats:         stats,
	}
}

// Summary loads a form and all its responses and aggregates them.
// Anyone holding the public id may read it.
func (s *Service) Summary(ctx context.Context, publicID string) (*Summary, error) {
	if err := domain.ValidatePublicID(publicID); err != nil {
		return nil, err
	}

	f, err := s.forms.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, fmt.Errorf("form.Summary: %w", notFound(err))
	}

	responses, err := s.forms.ListResponses(ctx, f.ID)
	if err != nil {
		return nil, fmt.Errorf("form.Summary: %w", err)
	}

	summary := Summarize(*f, responses)
	return &summary, nil
}
