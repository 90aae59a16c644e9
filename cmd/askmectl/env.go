package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/askme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres/answer"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres/like"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres/tag"
	"github.com/heartmarshall/askme-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/askme-backend/internal/app"
	"github.com/heartmarshall/askme-backend/internal/config"
	"github.com/heartmarshall/askme-backend/internal/seeder"
)

// env is what every command needs: configuration and a logger.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadEnv() (*env, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &env{cfg: cfg, logger: app.NewLogger(cfg.Log)}, nil
}

// openSeeder connects to the database and wires the seeder to the
// repositories. The caller closes the pool.
func (e *env) openSeeder(ctx context.Context, seederConfig string) (*seeder.Seeder, *pgxpool.Pool, error) {
	scfg, err := seeder.LoadConfig(seederConfig)
	if err != nil {
		return nil, nil, err
	}

	pool, err := postgres.NewPool(ctx, e.cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	repos := seeder.Repos{
		Users:     user.New(pool),
		Tags:      tag.New(pool),
		Questions: question.New(pool),
		Answers:   answer.New(pool),
		Likes:     like.New(pool),
		Tx:        postgres.NewTxManager(pool),
	}
	return seeder.New(e.logger, repos, *scfg), pool, nil
}
