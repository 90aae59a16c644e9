package rest

import (
	"context"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/internal/service/account"
	"github.com/heartmarshall/askme-backend/internal/service/feed"
	"github.com/heartmarshall/askme-backend/internal/service/question"
)

var _ feedService = &feedServiceMock{}

type feedServiceMock struct {
	ViewFunc func(ctx context.Context, fq domain.FeedQuery, rawPage string) (*feed.View, error)
}

func (m *feedServiceMock) View(ctx context.Context, fq domain.FeedQuery, rawPage string) (*feed.View, error) {
	if m.ViewFunc == nil {
		panic("feedServiceMock.ViewFunc: method is nil but feedService.View was just called")
	}
	return m.ViewFunc(ctx, fq, rawPage)
}

var _ questionService = &questionServiceMock{}

type questionServiceMock struct {
	AskFunc       func(ctx context.Context, input question.AskInput) (domain.Question, error)
	GetFunc       func(ctx context.Context, id int64, rawPage string) (*question.Detail, error)
	AddAnswerFunc func(ctx context.Context, questionID int64, input question.AnswerInput) (*question.Placement, error)
	DeleteFunc    func(ctx context.Context, id int64) error
}

func (m *questionServiceMock) Ask(ctx context.Context, input question.AskInput) (domain.Question, error) {
	if m.AskFunc == nil {
		panic("questionServiceMock.AskFunc: method is nil but questionService.Ask was just called")
	}
	return m.AskFunc(ctx, input)
}

func (m *questionServiceMock) Get(ctx context.Context, id int64, rawPage string) (*question.Detail, error) {
	if m.GetFunc == nil {
		panic("questionServiceMock.GetFunc: method is nil but questionService.Get was just called")
	}
	return m.GetFunc(ctx, id, rawPage)
}

func (m *questionServiceMock) AddAnswer(ctx context.Context, questionID int64, input question.AnswerInput) (*question.Placement, error) {
	if m.AddAnswerFunc == nil {
		panic("questionServiceMock.AddAnswerFunc: method is nil but questionService.AddAnswer was just called")
	}
	return m.AddAnswerFunc(ctx, questionID, input)
}

func (m *questionServiceMock) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc == nil {
		panic("questionServiceMock.DeleteFunc: method is nil but questionService.Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

var _ engagementService = &engagementServiceMock{}

type engagementServiceMock struct {
	LikeQuestionFunc func(ctx context.Context, questionID int64) (int, error)
	LikeAnswerFunc   func(ctx context.Context, answerID int64) (int, error)
}

func (m *engagementServiceMock) LikeQuestion(ctx context.Context, questionID int64) (int, error) {
	if m.LikeQuestionFunc == nil {
		panic("engagementServiceMock.LikeQuestionFunc: method is nil but engagementService.LikeQuestion was just called")
	}
	return m.LikeQuestionFunc(ctx, questionID)
}

func (m *engagementServiceMock) LikeAnswer(ctx context.Context, answerID int64) (int, error) {
	if m.LikeAnswerFunc == nil {
		panic("engagementServiceMock.LikeAnswerFunc: method is nil but engagementService.LikeAnswer was just called")
	}
	return m.LikeAnswerFunc(ctx, answerID)
}

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	SignupFunc        func(ctx context.Context, input account.SignupInput) (*account.AuthResult, error)
	LoginFunc         func(ctx context.Context, input account.LoginInput) (*account.AuthResult, error)
	MeFunc            func(ctx context.Context) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, input account.ProfileInput) (*domain.User, error)
}

func (m *accountServiceMock) Signup(ctx context.Context, input account.SignupInput) (*account.AuthResult, error) {
	if m.SignupFunc == nil {
		panic("accountServiceMock.SignupFunc: method is nil but accountService.Signup was just called")
	}
	return m.SignupFunc(ctx, input)
}

func (m *accountServiceMock) Login(ctx context.Context, input account.LoginInput) (*account.AuthResult, error) {
	if m.LoginFunc == nil {
		panic("accountServiceMock.LoginFunc: method is nil but accountService.Login was just called")
	}
	return m.LoginFunc(ctx, input)
}

func (m *accountServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if m.MeFunc == nil {
		panic("accountServiceMock.MeFunc: method is nil but accountService.Me was just called")
	}
	return m.MeFunc(ctx)
}

func (m *accountServiceMock) UpdateProfile(ctx context.Context, input account.ProfileInput) (*domain.User, error) {
	if m.UpdateProfileFunc == nil {
		panic("accountServiceMock.UpdateProfileFunc: method is nil but accountService.UpdateProfile was just called")
	}
	return m.UpdateProfileFunc(ctx, input)
}

// prefixURLs resolves avatar references by prefixing them.
type prefixURLs string

func (p prefixURLs) URL(ref *string) string {
	if ref == nil {
		return ""
	}
	return string(p) + *ref
}
