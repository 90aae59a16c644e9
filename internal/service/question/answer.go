package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/internal/pagination"
	"github.com/heartmarshall/askme-backend/pkg/ctxutil"
)

// Placement tells where a freshly posted answer landed.
type Placement struct {
	Answer domain.Answer
	Page   int
}

// AddAnswer posts an answer to an existing question on behalf of the
// authenticated user and resolves the answers page it shows up on.
func (s *Service) AddAnswer(ctx context.Context, questionID int64, input AnswerInput) (*Placement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	text, err := input.Validate()
	if err != nil {
		return nil, err
	}

	answer, err := s.answers.Create(ctx, domain.Answer{
		QuestionID: questionID,
		AuthorID:   userID,
		Text:       text,
	})
	if err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}

	page, err := s.AnswerPage(ctx, questionID, answer.ID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer posted",
		slog.Int64("user_id", userID),
		slog.Int64("question_id", questionID),
		slog.Int64("answer_id", answer.ID),
		slog.Int("page", page),
	)

	return &Placement{Answer: answer, Page: page}, nil
}

// AnswerPage returns the 1-based answers page holding answerID under the
// question's oldest-first ordering. An answer that does not exist or belongs
// to a different question is ErrNotFound.
func (s *Service) AnswerPage(ctx context.Context, questionID, answerID int64) (int, error) {
	pos, err := s.answers.Position(ctx, questionID, answerID)
	if err != nil {
		return 0, fmt.Errorf("answer position: %w", err)
	}
	if pos == 0 {
		return 0, fmt.Errorf("answer %d of question %d: %w", answerID, questionID, domain.ErrNotFound)
	}
	return pagination.PageOf(pos, s.answersPageSize), nil
}
