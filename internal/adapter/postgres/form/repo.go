// Package form implements form and response persistence using PostgreSQL.
package form

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Sweetdevil144/feedback-platform/internal/adapter/postgres"
	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

const (
	entityForm     = "form"
	entityResponse = "form_response"
)

var formColumns = []string{
	"f.id", "f.public_id", "f.created_by", "f.title", "f.questions", "f.created_at", "f.updated_at",
}

const responseCountColumn = "(SELECT count(*) FROM form_responses r WHERE r.form_id = f.id) AS response_count"

// Repo provides form persistence backed by PostgreSQL. Responses live in
// form_responses, ordered by their position within the form.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new form repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new form and returns it with a zero response count.
func (r *Repo) Create(ctx context.Context, f domain.Form) (*domain.Form, error) {
	questions, err := json.Marshal(f.Questions)
	if err != nil {
		return nil, fmt.Errorf("marshal questions: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert("forms").
		Columns("id", "public_id", "created_by", "title", "questions", "created_at", "updated_at").
		Values(f.ID.Hex(), f.PublicID, f.CreatedBy.Hex(), f.Title, questions, f.CreatedAt, f.UpdatedAt).
		Suffix("RETURNING id, public_id, created_by, title, questions, created_at, updated_at, 0").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build form insert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanForm(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entityForm, f.PublicID)
	}
	return created, nil
}

// ListByOwner returns the owner's forms, newest first, each with its
// response count. Responses themselves are not loaded.
func (r *Repo) ListByOwner(ctx context.Context, ownerID domain.ID) ([]domain.Form, error) {
	sql, args, err := selectForms().
		Column(responseCountColumn).
		Where(squirrel.Eq{"f.created_by": ownerID.Hex()}).
		OrderBy("f.created_at DESC", "f.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build form list: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, entityForm, ownerID.Hex())
	}
	defer rows.Close()

	forms := make([]domain.Form, 0)
	for rows.Next() {
		f, err := scanForm(rows)
		if err != nil {
			return nil, postgres.MapError(err, entityForm, ownerID.Hex())
		}
		forms = append(forms, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entityForm, ownerID.Hex())
	}
	return forms, nil
}

// GetByPublicID returns the form shared under publicID with its response count.
func (r *Repo) GetByPublicID(ctx context.Context, publicID string) (*domain.Form, error) {
	sql, args, err := selectForms().
		Column(responseCountColumn).
		Where(squirrel.Eq{"f.public_id": publicID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build form get: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	f, err := scanForm(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entityForm, publicID)
	}
	return f, nil
}

// LockByPublicID loads the form and takes a row lock on it until the
// surrounding transaction ends, serializing response appends per form.
// It must run inside TxManager.RunInTx. ResponseCount is left zero.
func (r *Repo) LockByPublicID(ctx context.Context, publicID string) (*domain.Form, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("form %s: lock requires a transaction", publicID)
	}

	sql, args, err := selectForms().
		Column("0").
		Where(squirrel.Eq{"f.public_id": publicID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build form lock: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	f, err := scanForm(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entityForm, publicID)
	}
	return f, nil
}

// AppendResponse stores resp after the form's existing responses.
func (r *Repo) AppendResponse(ctx context.Context, formID domain.ID, resp domain.Response) error {
	answers, err := json.Marshal(resp.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	_, err = q.Exec(ctx,
		`INSERT INTO form_responses (form_id, position, answers, submitted_at)
		 SELECT $1::char(24), COALESCE(MAX(position) + 1, 0), $2::jsonb, $3::timestamptz
		 FROM form_responses WHERE form_id = $1::char(24)`,
		formID.Hex(), answers, resp.SubmittedAt,
	)
	if err != nil {
		return postgres.MapError(err, entityResponse, formID.Hex())
	}
	return nil
}

// ListResponses returns every response of the form in submission order.
func (r *Repo) ListResponses(ctx context.Context, formID domain.ID) ([]domain.Response, error) {
	sql, args, err := postgres.Builder().
		Select("answers", "submitted_at").
		From("form_responses").
		Where(squirrel.Eq{"form_id": formID.Hex()}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build response list: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, entityResponse, formID.Hex())
	}
	defer rows.Close()

	responses := make([]domain.Response, 0)
	for rows.Next() {
		var (
			raw         []byte
			submittedAt time.Time
		)
		if err := rows.Scan(&raw, &submittedAt); err != nil {
			return nil, postgres.MapError(err, entityResponse, formID.Hex())
		}

		var answers []domain.Answer
		if err := json.Unmarshal(raw, &answers); err != nil {
			return nil, fmt.Errorf("form_response %s: decode answers: %w", formID.Hex(), err)
		}
		responses = append(responses, domain.Response{Answers: answers, SubmittedAt: submittedAt.UTC()})
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entityResponse, formID.Hex())
	}
	return responses, nil
}

func selectForms() squirrel.SelectBuilder {
	return postgres.Builder().Select(formColumns...).From("forms f")
}

func scanForm(row pgx.Row) (*domain.Form, error) {
	var (
		f             domain.Form
		id, createdBy string
		questions     []byte
		responseCount int64
	)
	err := row.Scan(&id, &f.PublicID, &createdBy, &f.Title, &questions, &f.CreatedAt, &f.UpdatedAt, &responseCount)
	if err != nil {
		return nil, err
	}

	if f.ID, err = domain.ParseID(id); err != nil {
		return nil, fmt.Errorf("stored form id %q: %w", id, err)
	}
	if f.CreatedBy, err = domain.ParseID(createdBy); err != nil {
		return nil, fmt.Errorf("stored owner id %q: %w", createdBy, err)
	}
	if err := json.Unmarshal(questions, &f.Questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	f.ResponseCount = int(responseCount)
	return &f, nil
}
