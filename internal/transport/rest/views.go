package rest

import (
	"time"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/internal/pagination"
)

// avatarURLs turns stored avatar references into public URLs.
type avatarURLs interface {
	URL(ref *string) string
}

type authorView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type tagView struct {
	Name      string `json:"name"`
	Questions int    `json:"questions,omitempty"`
}

type questionView struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	CreatedAt   time.Time  `json:"createdAt"`
	Author      authorView `json:"author"`
	Tags        []string   `json:"tags"`
	LikeCount   int        `json:"likeCount"`
	AnswerCount int        `json:"answerCount"`
}

type answerView struct {
	ID        int64      `json:"id"`
	Text      string     `json:"text"`
	IsCorrect bool       `json:"isCorrect"`
	CreatedAt time.Time  `json:"createdAt"`
	Author    authorView `json:"author"`
	LikeCount int        `json:"likeCount"`
}

type pageView[T any] struct {
	Items          []T  `json:"items"`
	Number         int  `json:"number"`
	NumPages       int  `json:"numPages"`
	PageSize       int  `json:"pageSize"`
	Total          int  `json:"total"`
	HasPrevious    bool `json:"hasPrevious"`
	HasNext        bool `json:"hasNext"`
	PreviousNumber int  `json:"previousNumber"`
	NextNumber     int  `json:"nextNumber"`
}

type userView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func toPageView[T, V any](p pagination.Page[T], conv func(T) V) pageView[V] {
	items := make([]V, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, conv(it))
	}
	return pageView[V]{
		Items:          items,
		Number:         p.Number,
		NumPages:       p.NumPages,
		PageSize:       p.PageSize,
		Total:          p.Total,
		HasPrevious:    p.HasPrevious(),
		HasNext:        p.HasNext(),
		PreviousNumber: p.PreviousNumber(),
		NextNumber:     p.NextNumber(),
	}
}

func toAuthorView(a domain.Author, avatars avatarURLs) authorView {
	return authorView{ID: a.ID, Username: a.Username, AvatarURL: avatars.URL(a.Avatar)}
}

func toQuestionView(c domain.QuestionCard, avatars avatarURLs) questionView {
	tags := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		tags = append(tags, t.Name)
	}
	return questionView{
		ID:          c.ID,
		Title:       c.Title,
		Text:        c.Text,
		CreatedAt:   c.CreatedAt,
		Author:      toAuthorView(c.Author, avatars),
		Tags:        tags,
		LikeCount:   c.LikeCount,
		AnswerCount: c.AnswerCount,
	}
}

func toAnswerView(c domain.AnswerCard, avatars avatarURLs) answerView {
	return answerView{
		ID:        c.ID,
		Text:      c.Text,
		IsCorrect: c.IsCorrect,
		CreatedAt: c.CreatedAt,
		Author:    toAuthorView(c.Author, avatars),
		LikeCount: c.LikeCount,
	}
}

func toTagViews(counts []domain.TagCount) []tagView {
	out := make([]tagView, 0, len(counts))
	for _, c := range counts {
		out = append(out, tagView{Name: c.Name, Questions: c.Questions})
	}
	return out
}

func toUserView(u *domain.User, avatars avatarURLs) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: avatars.URL(u.Profile.Avatar),
	}
}
