// Package like implements question and answer likes using PostgreSQL.
//
// Uniqueness of a like per (user, target) is enforced by a unique constraint,
// so concurrent duplicate likes leave exactly one row; the losing insert
// surfaces as domain.ErrAlreadyExists.
package like

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/askme-backend/internal/adapter/postgres"
)

// Repo provides like persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new like repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// LikeQuestion records that userID liked questionID.
func (r *Repo) LikeQuestion(ctx context.Context, userID, questionID int64) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO question_likes (user_id, question_id) VALUES ($1, $2)`, userID, questionID)
	if err != nil {
		return postgres.MapError(err, "question_like", fmt.Sprintf("%d/%d", userID, questionID))
	}
	return nil
}

// LikeAnswer records that userID liked answerID.
func (r *Repo) LikeAnswer(ctx context.Context, userID, answerID int64) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO answer_likes (user_id, answer_id) VALUES ($1, $2)`, userID, answerID)
	if err != nil {
		return postgres.MapError(err, "answer_like", fmt.Sprintf("%d/%d", userID, answerID))
	}
	return nil
}

// CountQuestionLikes returns the number of likes on the question.
func (r *Repo) CountQuestionLikes(ctx context.Context, questionID int64) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM question_likes WHERE question_id = $1`, questionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count likes of question %d: %w", questionID, err)
	}
	return n, nil
}

// CountAnswerLikes returns the number of likes on the answer.
func (r *Repo) CountAnswerLikes(ctx context.Context, answerID int64) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM answer_likes WHERE answer_id = $1`, answerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count likes of answer %d: %w", answerID, err)
	}
	return n, nil
}
