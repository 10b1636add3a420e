// Package user implements the credential store using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Sweetdevil144/feedback-platform/internal/adapter/postgres"
	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

const (
	entity      = "user"
	userColumns = "id, name, email, created_at, updated_at"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id.Hex())
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id.Hex())
	}
	return u, nil
}

// GetByEmail returns a user by normalized email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, email)
	}
	return u, nil
}

// GetCredentials returns the user and the stored password hash for a login
// attempt. It is the only read that exposes the hash.
func (r *Repo) GetCredentials(ctx context.Context, email string) (*domain.User, string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		u    domain.User
		id   string
		hash string
	)
	err := q.QueryRow(ctx,
		`SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, email,
	).Scan(&id, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt, &hash)
	if err != nil {
		return nil, "", postgres.MapError(err, entity, email)
	}

	if u.ID, err = domain.ParseID(id); err != nil {
		return nil, "", fmt.Errorf("user %s: stored id: %w", id, err)
	}
	return &u, hash, nil
}

// Create inserts a new user with its password hash and returns the persisted
// user. A duplicate email maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User, passwordHash string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		u.ID.Hex(), u.Name, u.Email, passwordHash, u.CreatedAt, u.UpdatedAt,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, u.Email)
	}
	return created, nil
}

// Update applies the non-nil fields of upd and bumps updated_at.
// An empty update returns the current row unchanged.
func (r *Repo) Update(ctx context.Context, id domain.ID, upd domain.UserUpdate) (*domain.User, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().
		Update("users").
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", id.Hex()).
		Suffix("RETURNING " + userColumns)

	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.Email != nil {
		b = b.Set("email", *upd.Email)
	}
	if upd.PasswordHash != nil {
		b = b.Set("password_hash", *upd.PasswordHash)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id.Hex())
	}
	return u, nil
}

// Delete removes the user. Their forms and responses go with them
// (ON DELETE CASCADE).
func (r *Repo) Delete(ctx context.Context, id domain.ID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id.Hex())
	if err != nil {
		return postgres.MapError(err, entity, id.Hex())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id.Hex())
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u  domain.User
		id string
	)
	if err := row.Scan(&id, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	parsed, err := domain.ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("stored id %q: %w", id, err)
	}
	u.ID = parsed
	return &u, nil
}
