package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/pkg/ctxutil"
)

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the username, email and optionally the avatar of the
// authenticated user. Uniqueness checks ignore the user's own values. The old
// avatar file is removed only after the new one is committed.
func (s *Service) UpdateProfile(ctx context.Context, input ProfileInput) (*domain.User, error) {
	current, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(s.maxAvatarBytes); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, input.Username, input.Email, current.ID); err != nil {
		return nil, err
	}

	avatar, err := s.storeAvatar(ctx, input.Avatar)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Update(txCtx, current.ID, input.Username, input.Email); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		if avatar != nil {
			if err := s.users.SetAvatar(txCtx, current.ID, avatar); err != nil {
				return fmt.Errorf("set avatar: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.discardAvatar(ctx, avatar)
		return nil, fmt.Errorf("account.UpdateProfile: %w", err)
	}

	if avatar != nil {
		s.discardAvatar(ctx, current.Profile.Avatar)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.Int64("user_id", current.ID),
		slog.Bool("avatar_changed", avatar != nil),
	)

	updated, err := s.users.GetByID(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return updated, nil
}
