// Package feed builds the question listings: newest, hottest and per tag.
package feed

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/askme-backend/internal/config"
	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/internal/pagination"
)

type questionRepo interface {
	CountFeed(ctx context.Context, fq domain.FeedQuery) (int, error)
	ListFeed(ctx context.Context, fq domain.FeedQuery, offset, limit int) ([]domain.QuestionCard, error)
}

type tagRepo interface {
	GetByName(ctx context.Context, name string) (domain.Tag, error)
	Counts(ctx context.Context) ([]domain.TagCount, error)
}

// Service provides the feed read side.
type Service struct {
	questions    questionRepo
	tags         tagRepo
	pageSize     int
	popularLimit int
	log          *slog.Logger
}

// NewService creates a new Feed service.
func NewService(log *slog.Logger, questions questionRepo, tags tagRepo, cfg config.ForumConfig) *Service {
	return &Service{
		questions:    questions,
		tags:         tags,
		pageSize:     cfg.FeedPageSize,
		popularLimit: cfg.PopularTagsLimit,
		log:          log.With("service", "feed"),
	}
}

// View is one rendered feed page plus the popular tags sidebar.
type View struct {
	Query       domain.FeedQuery
	Page        pagination.Page[domain.QuestionCard]
	PopularTags []domain.TagCount
}

// Feed returns the requested page of a feed. For the tag feed the tag must
// exist (exact, case-sensitive name); an existing tag with no questions
// yields an empty first page.
func (s *Service) Feed(ctx context.Context, fq domain.FeedQuery, rawPage string) (pagination.Page[domain.QuestionCard], error) {
	if fq.Mode == domain.FeedTag {
		if fq.Tag == "" {
			return pagination.Page[domain.QuestionCard]{}, fmt.Errorf("tag feed: empty tag name: %w", domain.ErrNotFound)
		}
		if _, err := s.tags.GetByName(ctx, fq.Tag); err != nil {
			return pagination.Page[domain.QuestionCard]{}, fmt.Errorf("tag feed: %w", err)
		}
	}

	page, err := pagination.Fetch[domain.QuestionCard](ctx, pagination.SourceFuncs[domain.QuestionCard]{
		CountFunc: func(ctx context.Context) (int, error) {
			return s.questions.CountFeed(ctx, fq)
		},
		SliceFunc: func(ctx context.Context, offset, limit int) ([]domain.QuestionCard, error) {
			return s.questions.ListFeed(ctx, fq, offset, limit)
		},
	}, rawPage, s.pageSize)
	if err != nil {
		return pagination.Page[domain.QuestionCard]{}, fmt.Errorf("%s feed: %w", fq.Mode, err)
	}

	return page, nil
}

// PopularTags ranks a fresh snapshot of tag usage.
func (s *Service) PopularTags(ctx context.Context) ([]domain.TagCount, error) {
	counts, err := s.tags.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("popular tags: %w", err)
	}
	return domain.TopTags(counts, s.popularLimit), nil
}

// View loads the feed page and the popular tags concurrently.
func (s *Service) View(ctx context.Context, fq domain.FeedQuery, rawPage string) (*View, error) {
	view := &View{Query: fq}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := s.Feed(gctx, fq, rawPage)
		view.Page = page
		return err
	})
	g.Go(func() error {
		tags, err := s.PopularTags(gctx)
		view.PopularTags = tags
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "feed rendered",
		slog.String("mode", fq.Mode.String()),
		slog.Int("page", view.Page.Number),
		slog.Int("total", view.Page.Total),
	)

	return view, nil
}
