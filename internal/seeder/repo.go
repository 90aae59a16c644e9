// Package seeder fills the forum with demo content and clears it again.
package seeder

import (
	"context"

	"github.com/heartmarshall/askme-backend/internal/domain"
)

// The contracts below are satisfied by the postgres repositories.

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	CreateProfile(ctx context.Context, p domain.Profile) error
	DeleteRegular(ctx context.Context) (int64, error)
}

type TagRepo interface {
	GetOrCreate(ctx context.Context, name string) (domain.Tag, error)
	DeleteUnused(ctx context.Context) (int64, error)
}

type QuestionRepo interface {
	Create(ctx context.Context, q domain.Question) (domain.Question, error)
	AttachTags(ctx context.Context, questionID int64, tagIDs []int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type AnswerRepo interface {
	Create(ctx context.Context, a domain.Answer) (domain.Answer, error)
}

type LikeRepo interface {
	LikeQuestion(ctx context.Context, userID, questionID int64) error
	LikeAnswer(ctx context.Context, userID, answerID int64) error
}

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repos bundles the storage the seeder writes to.
type Repos struct {
	Users     UserRepo
	Tags      TagRepo
	Questions QuestionRepo
	Answers   AnswerRepo
	Likes     LikeRepo
	Tx        TxManager
}
