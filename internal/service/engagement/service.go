// Package engagement records likes on questions and answers.
package engagement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/pkg/ctxutil"
)

type likeRepo interface {
	LikeQuestion(ctx context.Context, userID, questionID int64) error
	LikeAnswer(ctx context.Context, userID, answerID int64) error
	CountQuestionLikes(ctx context.Context, questionID int64) (int, error)
	CountAnswerLikes(ctx context.Context, answerID int64) (int, error)
}

// Service implements the like operations.
type Service struct {
	likes likeRepo
	log   *slog.Logger
}

// NewService creates a new Engagement service.
func NewService(log *slog.Logger, likes likeRepo) *Service {
	return &Service{
		likes: likes,
		log:   log.With("service", "engagement"),
	}
}

// LikeQuestion likes the question as the authenticated user and returns the
// new like count. A second like by the same user is domain.ErrConflict.
func (s *Service) LikeQuestion(ctx context.Context, questionID int64) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := s.likes.LikeQuestion(ctx, userID, questionID); err != nil {
		return 0, likeError("question", err)
	}

	count, err := s.likes.CountQuestionLikes(ctx, questionID)
	if err != nil {
		return 0, fmt.Errorf("count question likes: %w", err)
	}

	s.log.InfoContext(ctx, "question liked",
		slog.Int64("user_id", userID),
		slog.Int64("question_id", questionID),
		slog.Int("likes", count),
	)
	return count, nil
}

// LikeAnswer likes the answer as the authenticated user and returns the new
// like count. A second like by the same user is domain.ErrConflict.
func (s *Service) LikeAnswer(ctx context.Context, answerID int64) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := s.likes.LikeAnswer(ctx, userID, answerID); err != nil {
		return 0, likeError("answer", err)
	}

	count, err := s.likes.CountAnswerLikes(ctx, answerID)
	if err != nil {
		return 0, fmt.Errorf("count answer likes: %w", err)
	}

	s.log.InfoContext(ctx, "answer liked",
		slog.Int64("user_id", userID),
		slog.Int64("answer_id", answerID),
		slog.Int("likes", count),
	)
	return count, nil
}

func likeError(target string, err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("like %s: already liked: %w", target, domain.ErrConflict)
	}
	return fmt.Errorf("like %s: %w", target, err)
}
