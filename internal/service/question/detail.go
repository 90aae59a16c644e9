package question

import (
	"context"
	"fmt"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/internal/pagination"
)

// Detail is the question page: the question card and one page of answers,
// oldest first.
type Detail struct {
	Question domain.QuestionCard
	Answers  pagination.Page[domain.AnswerCard]
}

// Get loads the question and the requested answers page.
func (s *Service) Get(ctx context.Context, id int64, rawPage string) (*Detail, error) {
	card, err := s.questions.GetCard(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	answers, err := pagination.Fetch[domain.AnswerCard](ctx, pagination.SourceFuncs[domain.AnswerCard]{
		CountFunc: func(ctx context.Context) (int, error) {
			return s.answers.CountByQuestion(ctx, id)
		},
		SliceFunc: func(ctx context.Context, offset, limit int) ([]domain.AnswerCard, error) {
			return s.answers.ListByQuestion(ctx, id, offset, limit)
		},
	}, rawPage, s.answersPageSize)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	return &Detail{Question: card, Answers: answers}, nil
}
