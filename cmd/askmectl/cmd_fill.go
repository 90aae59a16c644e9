package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

var seederConfig string

var fillCmd = &cobra.Command{
	Use:   "fill <ratio>",
	Short: "Generate demo content",
	Long: `Generate demo content scaled by ratio: ratio users and tags,
10*ratio questions with one to three tags each, 100*ratio answers and
up to 200*ratio likes.`,
	Args: cobra.ExactArgs(1),
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVar(&seederConfig, "seeder-config", "", "path to seeder YAML config file")
}

func parseRatio(arg string) (int, error) {
	ratio, err := strconv.Atoi(arg)
	if err != nil || ratio < 1 {
		return 0, fmt.Errorf("ratio must be a positive integer, got %q", arg)
	}
	return ratio, nil
}

func runFill(cmd *cobra.Command, args []string) error {
	ratio, err := parseRatio(args[0])
	if err != nil {
		return err
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	s, pool, err := e.openSeeder(ctx, seederConfig)
	if err != nil {
		return err
	}
	defer pool.Close()

	stats, err := s.Fill(ctx, ratio)
	if err != nil {
		return err
	}

	e.logger.Info("database filled",
		slog.Int("users", stats.Users),
		slog.Int("tags", stats.Tags),
		slog.Int("questions", stats.Questions),
		slog.Int("answers", stats.Answers),
		slog.Int("question_likes", stats.QuestionLikes),
		slog.Int("answer_likes", stats.AnswerLikes),
	)
	return nil
}
