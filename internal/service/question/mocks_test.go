package question

import (
	"context"
	"sync"

	"github.com/heartmarshall/askme-backend/internal/domain"
)

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	CreateFunc     func(ctx context.Context, q domain.Question) (domain.Question, error)
	AttachTagsFunc func(ctx context.Context, questionID int64, tagIDs []int64) error
	GetByIDFunc    func(ctx context.Context, id int64) (domain.Question, error)
	GetCardFunc    func(ctx context.Context, id int64) (domain.QuestionCard, error)
	DeleteFunc     func(ctx context.Context, id int64) error

	calls struct {
		Create []struct {
			Q domain.Question
		}
		AttachTags []struct {
			QuestionID int64
			TagIDs     []int64
		}
		Delete []struct {
			ID int64
		}
	}
	lockCreate     sync.RWMutex
	lockAttachTags sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *questionRepoMock) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	if mock.CreateFunc == nil {
		panic("questionRepoMock.CreateFunc: method is nil but questionRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Q domain.Question }{Q: q})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, q)
}

func (mock *questionRepoMock) CreateCalls() []struct{ Q domain.Question } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *questionRepoMock) AttachTags(ctx context.Context, questionID int64, tagIDs []int64) error {
	if mock.AttachTagsFunc == nil {
		panic("questionRepoMock.AttachTagsFunc: method is nil but questionRepo.AttachTags was just called")
	}
	callInfo := struct {
		QuestionID int64
		TagIDs     []int64
	}{QuestionID: questionID, TagIDs: tagIDs}
	mock.lockAttachTags.Lock()
	mock.calls.AttachTags = append(mock.calls.AttachTags, callInfo)
	mock.lockAttachTags.Unlock()
	return mock.AttachTagsFunc(ctx, questionID, tagIDs)
}

func (mock *questionRepoMock) AttachTagsCalls() []struct {
	QuestionID int64
	TagIDs     []int64
} {
	mock.lockAttachTags.RLock()
	defer mock.lockAttachTags.RUnlock()
	return mock.calls.AttachTags
}

func (mock *questionRepoMock) GetByID(ctx context.Context, id int64) (domain.Question, error) {
	if mock.GetByIDFunc == nil {
		panic("questionRepoMock.GetByIDFunc: method is nil but questionRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *questionRepoMock) GetCard(ctx context.Context, id int64) (domain.QuestionCard, error) {
	if mock.GetCardFunc == nil {
		panic("questionRepoMock.GetCardFunc: method is nil but questionRepo.GetCard was just called")
	}
	return mock.GetCardFunc(ctx, id)
}

func (mock *questionRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("questionRepoMock.DeleteFunc: method is nil but questionRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID int64 }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *questionRepoMock) DeleteCalls() []struct{ ID int64 } {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, name string) (domain.Tag, error)

	calls struct {
		GetOrCreate []struct {
			Name string
		}
	}
	lockGetOrCreate sync.RWMutex
}

func (mock *tagRepoMock) GetOrCreate(ctx context.Context, name string) (domain.Tag, error) {
	if mock.GetOrCreateFunc == nil {
		panic("tagRepoMock.GetOrCreateFunc: method is nil but tagRepo.GetOrCreate was just called")
	}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, struct{ Name string }{Name: name})
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, name)
}

func (mock *tagRepoMock) GetOrCreateCalls() []struct{ Name string } {
	mock.lockGetOrCreate.RLock()
	defer mock.lockGetOrCreate.RUnlock()
	return mock.calls.GetOrCreate
}

var _ answerRepo = &answerRepoMock{}

type answerRepoMock struct {
	CreateFunc          func(ctx context.Context, a domain.Answer) (domain.Answer, error)
	CountByQuestionFunc func(ctx context.Context, questionID int64) (int, error)
	ListByQuestionFunc  func(ctx context.Context, questionID int64, offset, limit int) ([]domain.AnswerCard, error)
	PositionFunc        func(ctx context.Context, questionID, answerID int64) (int, error)

	calls struct {
		Create []struct {
			A domain.Answer
		}
		ListByQuestion []struct {
			QuestionID int64
			Offset     int
			Limit      int
		}
	}
	lockCreate         sync.RWMutex
	lockListByQuestion sync.RWMutex
}

func (mock *answerRepoMock) Create(ctx context.Context, a domain.Answer) (domain.Answer, error) {
	if mock.CreateFunc == nil {
		panic("answerRepoMock.CreateFunc: method is nil but answerRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ A domain.Answer }{A: a})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *answerRepoMock) CreateCalls() []struct{ A domain.Answer } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *answerRepoMock) CountByQuestion(ctx context.Context, questionID int64) (int, error) {
	if mock.CountByQuestionFunc == nil {
		panic("answerRepoMock.CountByQuestionFunc: method is nil but answerRepo.CountByQuestion was just called")
	}
	return mock.CountByQuestionFunc(ctx, questionID)
}

func (mock *answerRepoMock) ListByQuestion(ctx context.Context, questionID int64, offset, limit int) ([]domain.AnswerCard, error) {
	if mock.ListByQuestionFunc == nil {
		panic("answerRepoMock.ListByQuestionFunc: method is nil but answerRepo.ListByQuestion was just called")
	}
	callInfo := struct {
		QuestionID int64
		Offset     int
		Limit      int
	}{QuestionID: questionID, Offset: offset, Limit: limit}
	mock.lockListByQuestion.Lock()
	mock.calls.ListByQuestion = append(mock.calls.ListByQuestion, callInfo)
	mock.lockListByQuestion.Unlock()
	return mock.ListByQuestionFunc(ctx, questionID, offset, limit)
}

func (mock *answerRepoMock) ListByQuestionCalls() []struct {
	QuestionID int64
	Offset     int
	Limit      int
} {
	mock.lockListByQuestion.RLock()
	defer mock.lockListByQuestion.RUnlock()
	return mock.calls.ListByQuestion
}

func (mock *answerRepoMock) Position(ctx context.Context, questionID, answerID int64) (int, error) {
	if mock.PositionFunc == nil {
		panic("answerRepoMock.PositionFunc: method is nil but answerRepo.Position was just called")
	}
	return mock.PositionFunc(ctx, questionID, answerID)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}
