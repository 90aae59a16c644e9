package config

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.SessionLifetime <= 0 {
		return fmt.Errorf("auth.session_lifetime must be > 0 (got %s)", c.Auth.SessionLifetime)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Forum.validate(); err != nil {
		return fmt.Errorf("forum: %w", err)
	}

	if c.Storage.MaxAvatarBytes <= 0 {
		return fmt.Errorf("storage.max_avatar_bytes must be > 0 (got %d)", c.Storage.MaxAvatarBytes)
	}
	if strings.TrimSpace(c.Storage.AvatarDir) == "" {
		return fmt.Errorf("storage.avatar_dir is required")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.Enabled && (c.RateLimit.Writes <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("rate_limit: writes and window must be > 0 when enabled")
	}

	return nil
}

func (f ForumConfig) validate() error {
	if f.FeedPageSize < 1 {
		return fmt.Errorf("feed_page_size must be >= 1 (got %d)", f.FeedPageSize)
	}
	if f.AnswersPageSize < 1 {
		return fmt.Errorf("answers_page_size must be >= 1 (got %d)", f.AnswersPageSize)
	}
	if f.PopularTagsLimit < 0 {
		return fmt.Errorf("popular_tags_limit must be >= 0 (got %d)", f.PopularTagsLimit)
	}
	return nil
}

func itoa(n int) string { return strconv.Itoa(n) }
