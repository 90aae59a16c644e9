package account

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/askme-backend/internal/auth"
	"github.com/heartmarshall/askme-backend/internal/domain"
)

// Signup registers a new user. The user and its profile are created in one
// transaction; an uploaded avatar is stored first and removed again if the
// transaction fails.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	input.normalize()

	if err := input.Validate(s.maxAvatarBytes); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, input.Username, input.Email, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password1), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("account.Signup hash password: %w", err)
	}

	avatar, err := s.storeAvatar(ctx, input.Avatar)
	if err != nil {
		return nil, err
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, &domain.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		profile := domain.Profile{UserID: user.ID, Avatar: avatar}
		if err := s.users.CreateProfile(txCtx, profile); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}

		user.Profile = profile
		created = user
		return nil
	})
	if err != nil {
		s.discardAvatar(ctx, avatar)
		return nil, fmt.Errorf("account.Signup: %w", err)
	}

	result, err := s.issueToken(created)
	if err != nil {
		return nil, fmt.Errorf("account.Signup issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("user_id", created.ID),
		slog.String("username", created.Username),
	)

	return result, nil
}

// checkUnique reports taken usernames and emails as field errors. Users other
// than exceptID are considered; pass 0 to consider everyone.
func (s *Service) checkUnique(ctx context.Context, username, email string, exceptID int64) error {
	var errs []domain.FieldError

	taken, err := s.users.UsernameTaken(ctx, username, exceptID)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		errs = append(errs, domain.FieldError{Field: "username", Message: "already taken"})
	}

	taken, err = s.users.EmailTaken(ctx, email, exceptID)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		errs = append(errs, domain.FieldError{Field: "email", Message: "already registered"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (s *Service) storeAvatar(ctx context.Context, a *Avatar) (*string, error) {
	if a == nil {
		return nil, nil
	}
	ref, err := s.avatars.Save(ctx, a.ContentType, a.Body)
	if err != nil {
		return nil, fmt.Errorf("store avatar: %w", err)
	}
	return &ref, nil
}

func (s *Service) discardAvatar(ctx context.Context, ref *string) {
	if ref == nil {
		return
	}
	if err := s.avatars.Delete(ctx, *ref); err != nil {
		s.log.WarnContext(ctx, "failed to remove avatar",
			slog.String("avatar", *ref),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	role := auth.RoleUser
	if user.IsSuperuser {
		role = auth.RoleSuperuser
	}
	token, err := s.tokens.GenerateAccessToken(user.ID, role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, AccessToken: token}, nil
}
