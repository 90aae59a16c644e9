package main

import (
	"context"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all content and every user except superusers",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func runClear(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	s, pool, err := e.openSeeder(ctx, "")
	if err != nil {
		return err
	}
	defer pool.Close()

	_, err = s.Clear(ctx)
	return err
}
