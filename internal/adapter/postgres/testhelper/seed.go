package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sweetdevil144/feedback-platform/internal/domain"
)

// SeedPasswordHash is stored for seeded users. It is not a usable bcrypt
// hash, so seeded users cannot log in.
const SeedPasswordHash = "seeded-user-without-password"

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        domain.NewID(),
		Name:      "Test User " + suffix,
		Email:     "testuser-" + suffix + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID.Hex(), user.Name, user.Email, SeedPasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedForm inserts a three-question form owned by ownerID and returns it.
func SeedForm(t *testing.T, pool *pgxpool.Pool, ownerID domain.ID) domain.Form {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	form := domain.Form{
		ID:        domain.NewID(),
		PublicID:  domain.NewPublicID(),
		CreatedBy: ownerID,
		Title:     "Seeded Survey " + uniqueSuffix(),
		Questions: []domain.Question{
			{Text: "How satisfied are you?", Type: domain.QuestionTypeMultipleChoice, Options: []string{"Good", "Bad"}},
			{Text: "What could we improve?", Type: domain.QuestionTypeText},
			{Text: "Would you recommend us?", Type: domain.QuestionTypeMultipleChoice, Options: []string{"Yes", "No"}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	questions, err := json.Marshal(form.Questions)
	if err != nil {
		t.Fatalf("testhelper: SeedForm marshal questions: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO forms (id, public_id, created_by, title, questions, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		form.ID.Hex(), form.PublicID, form.CreatedBy.Hex(), form.Title, questions, form.CreatedAt, form.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedForm insert: %v", err)
	}

	return form
}
