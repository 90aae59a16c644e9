// Package question implements question submission, the question page and
// answering.
package question

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/askme-backend/internal/config"
	"github.com/heartmarshall/askme-backend/internal/domain"
)

type questionRepo interface {
	Create(ctx context.Context, q domain.Question) (domain.Question, error)
	AttachTags(ctx context.Context, questionID int64, tagIDs []int64) error
	GetByID(ctx context.Context, id int64) (domain.Question, error)
	GetCard(ctx context.Context, id int64) (domain.QuestionCard, error)
	Delete(ctx context.Context, id int64) error
}

type tagRepo interface {
	GetOrCreate(ctx context.Context, name string) (domain.Tag, error)
}

type answerRepo interface {
	Create(ctx context.Context, a domain.Answer) (domain.Answer, error)
	CountByQuestion(ctx context.Context, questionID int64) (int, error)
	ListByQuestion(ctx context.Context, questionID int64, offset, limit int) ([]domain.AnswerCard, error)
	Position(ctx context.Context, questionID, answerID int64) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements question business logic.
type Service struct {
	questions       questionRepo
	tags            tagRepo
	answers         answerRepo
	tx              txManager
	answersPageSize int
	log             *slog.Logger
}

// NewService creates a new Question service.
func NewService(
	log *slog.Logger,
	questions questionRepo,
	tags tagRepo,
	answers answerRepo,
	tx txManager,
	cfg config.ForumConfig,
) *Service {
	return &Service{
		questions:       questions,
		tags:            tags,
		answers:         answers,
		tx:              tx,
		answersPageSize: cfg.AnswersPageSize,
		log:             log.With("service", "question"),
	}
}
