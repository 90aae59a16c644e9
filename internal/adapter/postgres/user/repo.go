// Package user implements the User and Profile repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/askme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/askme-backend/internal/domain"
)

// Repo provides user and profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// Create inserts a new user. ID and CreatedAt are assigned by the database.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created := *u
	err := q.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, is_superuser)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Username, u.Email, u.PasswordHash, u.IsSuperuser,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	created.Profile.UserID = created.ID
	return &created, nil
}

// CreateProfile inserts the profile row of a freshly created user.
func (r *Repo) CreateProfile(ctx context.Context, p domain.Profile) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, `INSERT INTO profiles (user_id, avatar) VALUES ($1, $2)`, p.UserID, p.Avatar); err != nil {
		return postgres.MapError(err, "profile", p.UserID)
	}
	return nil
}

// GetByID returns a user with its profile.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.id": id}, id)
}

// GetByUsername looks a user up case-insensitively.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Expr("lower(u.username) = lower(?)", username), username)
}

// UsernameTaken reports whether another user (not exceptID) already holds
// username, compared case-insensitively. Pass 0 to check against everyone.
func (r *Repo) UsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error) {
	return r.exists(ctx, squirrel.And{
		squirrel.Expr("lower(username) = lower(?)", username),
		squirrel.NotEq{"id": exceptID},
	}, username)
}

// EmailTaken reports whether another user (not exceptID) already uses email.
func (r *Repo) EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error) {
	return r.exists(ctx, squirrel.And{
		squirrel.Eq{"email": strings.ToLower(email)},
		squirrel.NotEq{"id": exceptID},
	}, email)
}

// Update stores a new username and email for the user.
func (r *Repo) Update(ctx context.Context, id int64, username, email string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET username = $2, email = $3 WHERE id = $1`, id, username, email)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetAvatar replaces the avatar reference stored on the profile.
func (r *Repo) SetAvatar(ctx context.Context, userID int64, avatar *string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE profiles SET avatar = $2 WHERE user_id = $1`, userID, avatar)
	if err != nil {
		return postgres.MapError(err, "profile", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %d: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// DeleteRegular removes every user that is not a superuser. Their content
// and likes go with them through ON DELETE CASCADE.
func (r *Repo) DeleteRegular(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE NOT is_superuser`)
	if err != nil {
		return 0, fmt.Errorf("delete regular users: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type userRow struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsSuperuser  bool      `db:"is_superuser"`
	CreatedAt    time.Time `db:"created_at"`
	Avatar       *string   `db:"avatar"`
}

func (row userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		IsSuperuser:  row.IsSuperuser,
		CreatedAt:    row.CreatedAt,
		Profile:      domain.Profile{UserID: row.ID, Avatar: row.Avatar},
	}
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select("u.id", "u.username", "u.email", "u.password_hash", "u.is_superuser", "u.created_at", "p.avatar").
		From("users u").
		LeftJoin("profiles p ON p.user_id = u.id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return row.toDomain(), nil
}

func (r *Repo) exists(ctx context.Context, where squirrel.Sqlizer, key any) (bool, error) {
	sub, args, err := postgres.Builder().Select("1").From("users").Where(where).ToSql()
	if err != nil {
		return false, fmt.Errorf("build user lookup: %w", err)
	}

	var found bool
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&found)
	if err != nil {
		return false, postgres.MapError(err, "user", key)
	}
	return found, nil
}
