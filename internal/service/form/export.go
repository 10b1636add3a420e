package form

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

// SubmittedAtLayout renders response timestamps in CSV exports: ISO-8601
// in UTC with millisecond precision.
const SubmittedAtLayout = "2006-01-02T15:04:05.000Z"

const submittedAtColumn = "submittedAt"

// Export is a rendered CSV attachment.
type Export struct {
	Filename string
	Data     []byte
}

// ExportInput selects how the attachment is named.
type ExportInput struct {
	// FilenameFromTitle names the file after the form title instead of its
	// public id.
	FilenameFromTitle bool
}

// BuildCSV renders one header row ("Q1: text", ..., "submittedAt") and one
// row per response in stored order. Missing answers and zero timestamps
// become empty cells. The output depends only on its inputs.
func BuildCSV(f domain.Form, responses []domain.Response) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(f.Questions)+1)
	for qi, q := range f.Questions {
		header = append(header, fmt.Sprintf("Q%d: %s", qi+1, q.Text))
	}
	header = append(header, submittedAtColumn)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(header))
	for _, r := range responses {
		for qi := range f.Questions {
			row[qi] = ""
			if a, ok := r.AnswerFor(qi); ok {
				row[qi] = a.Answer
			}
		}
		row[len(row)-1] = formatSubmittedAt(r.SubmittedAt)
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatSubmittedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(SubmittedAtLayout)
}

// ExportFilename names the attachment after the public id, or after the
// title when asked to or when no public id is available.
func ExportFilename(f domain.Form, fromTitle bool) string {
	if fromTitle || strings.TrimSpace(f.PublicID) == "" {
		return domain.Slugify(f.Title) + "_responses.csv"
	}
	return "form_" + f.PublicID + "_responses.csv"
}

// Export renders the form's responses as a CSV attachment. Owner only.
func (s *Service) Export(ctx context.Context, publicID string, input ExportInput) (*Export, error) {
	f, err := s.loadOwned(ctx, publicID, ErrNotOwnerExport)
	if err != nil {
		return nil, fmt.Errorf("form.Export: %w", err)
	}

	responses, err := s.forms.ListResponses(ctx, f.ID)
	if err != nil {
		return nil, fmt.Errorf("form.Export: %w", err)
	}

	data, err := BuildCSV(*f, responses)
	if err != nil {
		return nil, fmt.Errorf("form.Export: %w", err)
	}

	s.log.InfoContext(ctx, "responses exported",
		slog.String("form_id", f.PublicID),
		slog.Int("rows", len(responses)))

	return &Export{
		Filename: ExportFilename(*f, input.FilenameFromTitle),
		Data:     data,
	}, nil
}
