package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/askme-backend/internal/adapter/filestore"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres/answer"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres/like"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres/tag"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/askme-backend/internal/auth"
	"github.com/heartmarshall/askme-backend/internal/config"
	"github.com/heartmarshall/askme-backend/internal/service/account"
	"github.com/heartmarshall/askme-backend/internal/service/engagement"
	"github.com/heartmarshall/askme-backend/internal/service/feed"
	questionsvc "github.com/heartmarshall/askme-backend/internal/service/question"
	"github.com/heartmarshall/askme-backend/internal/transport/middleware"
	"github.com/heartmarshall/askme-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	avatars, err := filestore.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("avatar storage: %w", err)
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	users := user.New(pool)
	tags := tag.New(pool)
	questions := question.New(pool)
	answers := answer.New(pool)
	likes := like.New(pool)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	sessions := newSessionManager(cfg.Auth)

	// Services.
	feedSvc := feed.NewService(logger, questions, tags, cfg.Forum)
	questionSvc := questionsvc.NewService(logger, questions, tags, answers, txm, cfg.Forum)
	engagementSvc := engagement.NewService(logger, likes)
	accountSvc := account.NewService(logger, users, avatars, tokens, txm, cfg.Auth, cfg.Storage)

	handlers := rest.Handlers{
		Feed:     rest.NewFeedHandler(feedSvc, avatars, logger),
		Question: rest.NewQuestionHandler(questionSvc, avatars, logger),
		Like:     rest.NewLikeHandler(engagementSvc, logger),
		Account:  rest.NewAccountHandler(accountSvc, sessions, avatars, cfg.Storage.MaxAvatarBytes, logger),
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Ping: pool.Ping},
			rest.Check{Name: "storage", Ping: func(context.Context) error {
				_, err := os.Stat(avatars.Dir())
				return err
			}},
		),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupIn)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterConfig{
		Log:             logger,
		Sessions:        sessions,
		Tokens:          tokens,
		CORS:            cfg.CORS,
		RateLimit:       cfg.RateLimit,
		RateLimiter:     limiter,
		AvatarDir:       avatars.Dir(),
		AvatarURLPrefix: avatars.URLPrefix(),
	}, handlers)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

func newSessionManager(cfg config.AuthConfig) *scs.SessionManager {
	sessions := scs.New()
	sessions.Lifetime = cfg.SessionLifetime
	sessions.Cookie.Name = cfg.SessionCookie
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode
	sessions.Cookie.Secure = cfg.SecureCookie
	return sessions
}
