package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/pkg/ctxutil"
)

// Delete removes a question owned by the authenticated user. Answers, tag
// links and likes go with it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get question: %w", err)
	}
	if q.AuthorID != userID {
		return domain.ErrForbidden
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.Int64("user_id", userID),
		slog.Int64("question_id", id),
	)
	return nil
}
