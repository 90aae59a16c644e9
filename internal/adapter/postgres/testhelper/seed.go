package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/askme-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueName returns prefix followed by a random suffix. The result is a
// valid tag name and, for short prefixes, a valid username.
func UniqueName(prefix string) string {
	return prefix + "_" + uniqueSuffix()
}

// SeedUser creates a user together with an empty profile.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	u := domain.User{
		Username:     "user_" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "not-a-real-hash",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Username, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	if _, err := pool.Exec(ctx, `INSERT INTO profiles (user_id) VALUES ($1)`, u.ID); err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}
	u.Profile = domain.Profile{UserID: u.ID}

	return u
}

// SeedTag creates a tag with a unique name derived from prefix.
func SeedTag(t *testing.T, pool *pgxpool.Pool, prefix string) domain.Tag {
	t.Helper()

	tag := domain.Tag{Name: UniqueName(prefix)}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tags (name) VALUES ($1) RETURNING id`, tag.Name,
	).Scan(&tag.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}
	return tag
}

// SeedQuestion creates a question by author created at createdAt and links
// it to tags.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, authorID int64, createdAt time.Time, tags ...domain.Tag) domain.Question {
	t.Helper()
	ctx := context.Background()

	q := domain.Question{
		AuthorID:  authorID,
		Title:     "Seeded question " + uniqueSuffix(),
		Text:      "Seeded question body that is long enough to be valid.",
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO questions (author_id, title, text, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		q.AuthorID, q.Title, q.Text, q.CreatedAt,
	).Scan(&q.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion insert: %v", err)
	}

	for _, tag := range tags {
		if _, err := pool.Exec(ctx,
			`INSERT INTO question_tags (question_id, tag_id) VALUES ($1, $2)`, q.ID, tag.ID,
		); err != nil {
			t.Fatalf("testhelper: SeedQuestion link tag %s: %v", tag.Name, err)
		}
	}

	return q
}

// SeedAnswer creates an answer to questionID created at createdAt.
func SeedAnswer(t *testing.T, pool *pgxpool.Pool, questionID, authorID int64, createdAt time.Time) domain.Answer {
	t.Helper()

	a := domain.Answer{
		QuestionID: questionID,
		AuthorID:   authorID,
		Text:       "Seeded answer " + uniqueSuffix(),
		CreatedAt:  createdAt.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO answers (question_id, author_id, text, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		a.QuestionID, a.AuthorID, a.Text, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer: %v", err)
	}
	return a
}

// SeedQuestionLikes makes n fresh users like questionID.
func SeedQuestionLikes(t *testing.T, pool *pgxpool.Pool, questionID int64, n int) {
	t.Helper()

	for range n {
		u := SeedUser(t, pool)
		if _, err := pool.Exec(context.Background(),
			`INSERT INTO question_likes (user_id, question_id) VALUES ($1, $2)`, u.ID, questionID,
		); err != nil {
			t.Fatalf("testhelper: SeedQuestionLikes: %v", err)
		}
	}
}
