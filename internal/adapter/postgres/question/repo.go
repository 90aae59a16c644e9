// Package question implements question storage and the feed queries.
package question

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/askme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/askme-backend/internal/domain"
)

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new question repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a question. ID and CreatedAt are assigned by the database.
func (r *Repo) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO questions (author_id, title, text) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		q.AuthorID, q.Title, q.Text,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return domain.Question{}, postgres.MapError(err, "question", q.Title)
	}
	return q, nil
}

// AttachTags links the question to every tag in tagIDs.
func (r *Repo) AttachTags(ctx context.Context, questionID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO question_tags (question_id, tag_id)
		 SELECT $1, unnest($2::bigint[])`,
		questionID, tagIDs,
	)
	if err != nil {
		return postgres.MapError(err, "question_tags", questionID)
	}
	if int(tag.RowsAffected()) != len(tagIDs) {
		return fmt.Errorf("question %d: attached %d of %d tags", questionID, tag.RowsAffected(), len(tagIDs))
	}
	return nil
}

// GetByID returns the bare question row.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Question, error) {
	var q domain.Question
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT id, author_id, title, text, created_at FROM questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.AuthorID, &q.Title, &q.Text, &q.CreatedAt)
	if err != nil {
		return domain.Question{}, postgres.MapError(err, "question", id)
	}
	return q, nil
}

// GetCard returns the question with author, tags and counters.
func (r *Repo) GetCard(ctx context.Context, id int64) (domain.QuestionCard, error) {
	sql, args, err := cardSelect().Where(squirrel.Eq{"q.id": id}).ToSql()
	if err != nil {
		return domain.QuestionCard{}, fmt.Errorf("build question query: %w", err)
	}

	var row cardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.QuestionCard{}, postgres.MapError(err, "question", id)
	}

	cards := []domain.QuestionCard{row.toDomain()}
	if err := r.loadTags(ctx, cards); err != nil {
		return domain.QuestionCard{}, err
	}
	return cards[0], nil
}

// CountFeed returns how many questions the feed holds.
func (r *Repo) CountFeed(ctx context.Context, fq domain.FeedQuery) (int, error) {
	sql, args, err := filterFeed(postgres.Builder().Select("count(*)").From("questions q"), fq).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build feed count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s feed: %w", fq.Mode, err)
	}
	return n, nil
}

// ListFeed returns one window of the feed in its canonical order:
// new and tag feeds by created_at DESC, hot by like count DESC then
// created_at DESC. id DESC breaks remaining ties so paging is stable.
func (r *Repo) ListFeed(ctx context.Context, fq domain.FeedQuery, offset, limit int) ([]domain.QuestionCard, error) {
	b := filterFeed(cardSelect(), fq)
	switch fq.Mode {
	case domain.FeedHot:
		b = b.OrderBy("like_count DESC", "q.created_at DESC", "q.id DESC")
	default:
		b = b.OrderBy("q.created_at DESC", "q.id DESC")
	}

	sql, args, err := b.Offset(uint64(max(offset, 0))).Limit(uint64(max(limit, 0))).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build feed query: %w", err)
	}

	var rows []cardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s feed: %w", fq.Mode, err)
	}

	cards := make([]domain.QuestionCard, len(rows))
	for i, row := range rows {
		cards[i] = row.toDomain()
	}
	if err := r.loadTags(ctx, cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Delete removes the question; answers, tag links and likes cascade.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "question", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every question together with its answers, tag links
// and likes.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM questions`)
	if err != nil {
		return 0, fmt.Errorf("delete all questions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func cardSelect() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"q.id", "q.author_id", "q.title", "q.text", "q.created_at",
			"u.username AS author_username",
			"p.avatar AS author_avatar",
			"(SELECT count(*) FROM question_likes ql WHERE ql.question_id = q.id) AS like_count",
			"(SELECT count(*) FROM answers a WHERE a.question_id = q.id) AS answer_count",
		).
		From("questions q").
		Join("users u ON u.id = q.author_id").
		LeftJoin("profiles p ON p.user_id = q.author_id")
}

func filterFeed(b squirrel.SelectBuilder, fq domain.FeedQuery) squirrel.SelectBuilder {
	if fq.Mode != domain.FeedTag {
		return b
	}
	return b.Where(squirrel.Expr(
		`EXISTS (SELECT 1 FROM question_tags qt JOIN tags t ON t.id = qt.tag_id
		 WHERE qt.question_id = q.id AND t.name = ?)`, fq.Tag,
	))
}

func (r *Repo) loadTags(ctx context.Context, cards []domain.QuestionCard) error {
	if len(cards) == 0 {
		return nil
	}

	ids := make([]int64, len(cards))
	for i := range cards {
		ids[i] = cards[i].ID
		cards[i].Tags = []domain.Tag{}
	}

	var rows []questionTagRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT qt.question_id, t.id, t.name
		 FROM question_tags qt
		 JOIN tags t ON t.id = qt.tag_id
		 WHERE qt.question_id = ANY($1)
		 ORDER BY t.name`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("load question tags: %w", err)
	}

	byQuestion := make(map[int64][]domain.Tag, len(cards))
	for _, row := range rows {
		byQuestion[row.QuestionID] = append(byQuestion[row.QuestionID], domain.Tag{ID: row.ID, Name: row.Name})
	}
	for i := range cards {
		if tags, ok := byQuestion[cards[i].ID]; ok {
			cards[i].Tags = tags
		}
	}
	return nil
}

type cardRow struct {
	ID             int64     `db:"id"`
	AuthorID       int64     `db:"author_id"`
	Title          string    `db:"title"`
	Text           string    `db:"text"`
	CreatedAt      time.Time `db:"created_at"`
	AuthorUsername string    `db:"author_username"`
	AuthorAvatar   *string   `db:"author_avatar"`
	LikeCount      int       `db:"like_count"`
	AnswerCount    int       `db:"answer_count"`
}

func (row cardRow) toDomain() domain.QuestionCard {
	return domain.QuestionCard{
		Question: domain.Question{
			ID:        row.ID,
			AuthorID:  row.AuthorID,
			Title:     row.Title,
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
		},
		Author:      domain.Author{ID: row.AuthorID, Username: row.AuthorUsername, Avatar: row.AuthorAvatar},
		LikeCount:   row.LikeCount,
		AnswerCount: row.AnswerCount,
	}
}

type questionTagRow struct {
	QuestionID int64  `db:"question_id"`
	ID         int64  `db:"id"`
	Name       string `db:"name"`
}
