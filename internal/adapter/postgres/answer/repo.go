// Package answer implements answer storage using PostgreSQL.
package answer

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/askme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/askme-backend/internal/domain"
)

// Repo provides answer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new answer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an answer. ID and CreatedAt are assigned by the database.
func (r *Repo) Create(ctx context.Context, a domain.Answer) (domain.Answer, error) {
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO answers (question_id, author_id, text, is_correct) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.QuestionID, a.AuthorID, a.Text, a.IsCorrect,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return domain.Answer{}, postgres.MapError(err, "answer", a.QuestionID)
	}
	return a, nil
}

// GetByID returns the bare answer row.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Answer, error) {
	var a domain.Answer
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT id, question_id, author_id, text, is_correct, created_at FROM answers WHERE id = $1`, id,
	).Scan(&a.ID, &a.QuestionID, &a.AuthorID, &a.Text, &a.IsCorrect, &a.CreatedAt)
	if err != nil {
		return domain.Answer{}, postgres.MapError(err, "answer", id)
	}
	return a, nil
}

// CountByQuestion returns the number of answers to the question.
func (r *Repo) CountByQuestion(ctx context.Context, questionID int64) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM answers WHERE question_id = $1`, questionID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count answers of question %d: %w", questionID, err)
	}
	return n, nil
}

// ListByQuestion returns a window of the question's answers, oldest first.
func (r *Repo) ListByQuestion(ctx context.Context, questionID int64, offset, limit int) ([]domain.AnswerCard, error) {
	sql, args, err := postgres.Builder().
		Select(
			"a.id", "a.question_id", "a.author_id", "a.text", "a.is_correct", "a.created_at",
			"u.username AS author_username",
			"p.avatar AS author_avatar",
			"(SELECT count(*) FROM answer_likes al WHERE al.answer_id = a.id) AS like_count",
		).
		From("answers a").
		Join("users u ON u.id = a.author_id").
		LeftJoin("profiles p ON p.user_id = a.author_id").
		Where(squirrel.Eq{"a.question_id": questionID}).
		OrderBy("a.created_at ASC", "a.id ASC").
		Offset(uint64(max(offset, 0))).
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build answers query: %w", err)
	}

	var rows []cardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list answers of question %d: %w", questionID, err)
	}

	cards := make([]domain.AnswerCard, len(rows))
	for i, row := range rows {
		cards[i] = row.toDomain()
	}
	return cards, nil
}

// Position returns the 1-based rank of the answer among its question's
// answers ordered oldest first (created_at, then id). It returns 0 when the
// answer does not exist or belongs to another question.
func (r *Repo) Position(ctx context.Context, questionID, answerID int64) (int, error) {
	var pos int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*)
		 FROM answers a
		 JOIN answers target ON target.id = $2 AND target.question_id = $1
		 WHERE a.question_id = $1
		   AND (a.created_at, a.id) <= (target.created_at, target.id)`,
		questionID, answerID,
	).Scan(&pos)
	if err != nil {
		return 0, fmt.Errorf("position of answer %d: %w", answerID, err)
	}
	return pos, nil
}

type cardRow struct {
	ID             int64     `db:"id"`
	QuestionID     int64     `db:"question_id"`
	AuthorID       int64     `db:"author_id"`
	Text           string    `db:"text"`
	IsCorrect      bool      `db:"is_correct"`
	CreatedAt      time.Time `db:"created_at"`
	AuthorUsername string    `db:"author_username"`
	AuthorAvatar   *string   `db:"author_avatar"`
	LikeCount      int       `db:"like_count"`
}

func (row cardRow) toDomain() domain.AnswerCard {
	return domain.AnswerCard{
		Answer: domain.Answer{
			ID:         row.ID,
			QuestionID: row.QuestionID,
			AuthorID:   row.AuthorID,
			Text:       row.Text,
			IsCorrect:  row.IsCorrect,
			CreatedAt:  row.CreatedAt,
		},
		Author:    domain.Author{ID: row.AuthorID, Username: row.AuthorUsername, Avatar: row.AuthorAvatar},
		LikeCount: row.LikeCount,
	}
}
