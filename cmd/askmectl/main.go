// Command askmectl runs operator tasks against the askme database:
// applying migrations, generating demo content and wiping it.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "askmectl",
	Short:         "Operator commands for the askme forum",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config YAML (default: $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Minute, "operation timeout")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(clearCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "askmectl:", err)
		os.Exit(1)
	}
}
