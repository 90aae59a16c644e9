// Package account implements signup, login and profile editing.
package account

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/askme-backend/internal/config"
	"github.com/heartmarshall/askme-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	CreateProfile(ctx context.Context, p domain.Profile) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UsernameTaken(ctx context.Context, username string, exceptID int64) (bool, error)
	EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
	Update(ctx context.Context, id int64, username, email string) error
	SetAvatar(ctx context.Context, userID int64, avatar *string) error
}

type avatarStore interface {
	Save(ctx context.Context, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

type tokenManager interface {
	GenerateAccessToken(userID int64, role string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account business logic.
type Service struct {
	users          userRepo
	avatars        avatarStore
	tokens         tokenManager
	tx             txManager
	bcryptCost     int
	maxAvatarBytes int64
	log            *slog.Logger
}

// NewService creates a new Account service.
func NewService(
	log *slog.Logger,
	users userRepo,
	avatars avatarStore,
	tokens tokenManager,
	tx txManager,
	authCfg config.AuthConfig,
	storageCfg config.StorageConfig,
) *Service {
	return &Service{
		users:          users,
		avatars:        avatars,
		tokens:         tokens,
		tx:             tx,
		bcryptCost:     authCfg.BcryptCost,
		maxAvatarBytes: storageCfg.MaxAvatarBytes,
		log:            log.With("service", "account"),
	}
}
