package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Forum     ForumConfig     `yaml:"forum"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds session, token and password settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"askme"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
	SessionLifetime time.Duration `yaml:"session_lifetime" env:"AUTH_SESSION_LIFETIME" env-default:"336h"`
	SessionCookie   string        `yaml:"session_cookie"   env:"AUTH_SESSION_COOKIE"   env-default:"askme_session"`
	SecureCookie    bool          `yaml:"secure_cookie"    env:"AUTH_SECURE_COOKIE"    env-default:"false"`
	BcryptCost      int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// ForumConfig holds feed and question page settings.
type ForumConfig struct {
	FeedPageSize     int `yaml:"feed_page_size"     env:"FORUM_FEED_PAGE_SIZE"     env-default:"5"`
	AnswersPageSize  int `yaml:"answers_page_size"  env:"FORUM_ANSWERS_PAGE_SIZE"  env-default:"5"`
	PopularTagsLimit int `yaml:"popular_tags_limit" env:"FORUM_POPULAR_TAGS_LIMIT" env-default:"10"`
}

// StorageConfig holds settings of the local avatar store.
type StorageConfig struct {
	AvatarDir       string `yaml:"avatar_dir"        env:"STORAGE_AVATAR_DIR"        env-default:"./uploads/avatars"`
	AvatarURLPrefix string `yaml:"avatar_url_prefix" env:"STORAGE_AVATAR_URL_PREFIX" env-default:"/uploads/avatars/"`
	MaxAvatarBytes  int64  `yaml:"max_avatar_bytes"  env:"STORAGE_MAX_AVATAR_BYTES"  env-default:"2097152"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits write routes per identity.
type RateLimitConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"RATE_LIMIT_ENABLED"    env-default:"true"`
	Writes    int           `yaml:"writes"     env:"RATE_LIMIT_WRITES"     env-default:"30"`
	Window    time.Duration `yaml:"window"     env:"RATE_LIMIT_WINDOW"     env-default:"1m"`
	CleanupIn time.Duration `yaml:"cleanup_in" env:"RATE_LIMIT_CLEANUP_IN" env-default:"5m"`
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + itoa(s.Port)
}

// Origins splits the comma-separated origin list.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
