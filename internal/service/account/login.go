package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/askme-backend/internal/domain"
)

// Login checks a username (case-insensitive) and password. Wrong credentials
// are a validation error on the "credentials" field so the form can be shown
// again; it does not reveal which part was wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("account.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, invalidCredentials()
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("account.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return result, nil
}

func invalidCredentials() error {
	return domain.NewValidationError("credentials", "invalid username or password")
}
