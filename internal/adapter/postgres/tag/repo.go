// Package tag implements the Tag Registry storage using PostgreSQL.
package tag

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/askme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/askme-backend/internal/domain"
)

// maxCreateAttempts bounds GetOrCreate when the row keeps vanishing between
// the insert and the lookup.
const maxCreateAttempts = 3

const (
	insertTagSQL = `INSERT INTO tags (name) VALUES ($1)
ON CONFLICT (name) DO NOTHING
RETURNING id, name`

	selectTagSQL = `SELECT id, name FROM tags WHERE name = $1`
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetOrCreate returns the tag with exactly this name, creating it if needed.
// Concurrent callers asking for the same new name all end up with the same
// row: the loser of the insert race reads the winner's row instead.
func (r *Repo) GetOrCreate(ctx context.Context, name string) (domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	for range maxCreateAttempts {
		var t domain.Tag

		err := q.QueryRow(ctx, insertTagSQL, name).Scan(&t.ID, &t.Name)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.Tag{}, postgres.MapError(err, "tag", name)
		}

		err = q.QueryRow(ctx, selectTagSQL, name).Scan(&t.ID, &t.Name)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.Tag{}, postgres.MapError(err, "tag", name)
		}
	}

	return domain.Tag{}, fmt.Errorf("tag %s: get or create after %d attempts: %w", name, maxCreateAttempts, domain.ErrConflict)
}

// GetByName returns the tag with exactly this name.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	var t domain.Tag
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, selectTagSQL, name).Scan(&t.ID, &t.Name)
	if err != nil {
		return domain.Tag{}, postgres.MapError(err, "tag", name)
	}
	return t, nil
}

// Counts returns every tag with the number of questions carrying it.
func (r *Repo) Counts(ctx context.Context) ([]domain.TagCount, error) {
	sql, args, err := postgres.Builder().
		Select("t.id", "t.name", "count(qt.question_id) AS questions").
		From("tags t").
		LeftJoin("question_tags qt ON qt.tag_id = t.id").
		GroupBy("t.id", "t.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tag counts query: %w", err)
	}

	var rows []countRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("tag counts: %w", err)
	}

	out := make([]domain.TagCount, len(rows))
	for i, row := range rows {
		out[i] = domain.TagCount{Tag: domain.Tag{ID: row.ID, Name: row.Name}, Questions: row.Questions}
	}
	return out, nil
}

// DeleteUnused removes tags that no question refers to.
func (r *Repo) DeleteUnused(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM tags t WHERE NOT EXISTS (SELECT 1 FROM question_tags qt WHERE qt.tag_id = t.id)`)
	if err != nil {
		return 0, fmt.Errorf("delete unused tags: %w", err)
	}
	return tag.RowsAffected(), nil
}

type countRow struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Questions int    `db:"questions"`
}
