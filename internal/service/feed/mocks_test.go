package feed

import (
	"context"
	"sync"

	"github.com/heartmarshall/askme-backend/internal/domain"
)

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	CountFeedFunc func(ctx context.Context, fq domain.FeedQuery) (int, error)
	ListFeedFunc  func(ctx context.Context, fq domain.FeedQuery, offset, limit int) ([]domain.QuestionCard, error)

	calls struct {
		CountFeed []struct {
			Fq domain.FeedQuery
		}
		ListFeed []struct {
			Fq     domain.FeedQuery
			Offset int
			Limit  int
		}
	}
	lockCountFeed sync.RWMutex
	lockListFeed  sync.RWMutex
}

func (mock *questionRepoMock) CountFeed(ctx context.Context, fq domain.FeedQuery) (int, error) {
	if mock.CountFeedFunc == nil {
		panic("questionRepoMock.CountFeedFunc: method is nil but questionRepo.CountFeed was just called")
	}
	mock.lockCountFeed.Lock()
	mock.calls.CountFeed = append(mock.calls.CountFeed, struct{ Fq domain.FeedQuery }{Fq: fq})
	mock.lockCountFeed.Unlock()
	return mock.CountFeedFunc(ctx, fq)
}

func (mock *questionRepoMock) CountFeedCalls() []struct{ Fq domain.FeedQuery } {
	mock.lockCountFeed.RLock()
	defer mock.lockCountFeed.RUnlock()
	return mock.calls.CountFeed
}

func (mock *questionRepoMock) ListFeed(ctx context.Context, fq domain.FeedQuery, offset, limit int) ([]domain.QuestionCard, error) {
	if mock.ListFeedFunc == nil {
		panic("questionRepoMock.ListFeedFunc: method is nil but questionRepo.ListFeed was just called")
	}
	callInfo := struct {
		Fq     domain.FeedQuery
		Offset int
		Limit  int
	}{Fq: fq, Offset: offset, Limit: limit}
	mock.lockListFeed.Lock()
	mock.calls.ListFeed = append(mock.calls.ListFeed, callInfo)
	mock.lockListFeed.Unlock()
	return mock.ListFeedFunc(ctx, fq, offset, limit)
}

func (mock *questionRepoMock) ListFeedCalls() []struct {
	Fq     domain.FeedQuery
	Offset int
	Limit  int
} {
	mock.lockListFeed.RLock()
	defer mock.lockListFeed.RUnlock()
	return mock.calls.ListFeed
}

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetByNameFunc func(ctx context.Context, name string) (domain.Tag, error)
	CountsFunc    func(ctx context.Context) ([]domain.TagCount, error)

	calls struct {
		GetByName []struct {
			Name string
		}
		Counts []struct{}
	}
	lockGetByName sync.RWMutex
	lockCounts    sync.RWMutex
}

func (mock *tagRepoMock) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	if mock.GetByNameFunc == nil {
		panic("tagRepoMock.GetByNameFunc: method is nil but tagRepo.GetByName was just called")
	}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, struct{ Name string }{Name: name})
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *tagRepoMock) GetByNameCalls() []struct{ Name string } {
	mock.lockGetByName.RLock()
	defer mock.lockGetByName.RUnlock()
	return mock.calls.GetByName
}

func (mock *tagRepoMock) Counts(ctx context.Context) ([]domain.TagCount, error) {
	if mock.CountsFunc == nil {
		panic("tagRepoMock.CountsFunc: method is nil but tagRepo.Counts was just called")
	}
	mock.lockCounts.Lock()
	mock.calls.Counts = append(mock.calls.Counts, struct{}{})
	mock.lockCounts.Unlock()
	return mock.CountsFunc(ctx)
}

func (mock *tagRepoMock) CountsCalls() []struct{} {
	mock.lockCounts.RLock()
	defer mock.lockCounts.RUnlock()
	return mock.calls.Counts
}
