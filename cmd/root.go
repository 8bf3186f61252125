package cmd

import (
	"fmt"
	"os"

	"schema-engine/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "schema-engine",
	Short: "Schema Reconciliation Engine",
	Long: `Schema Engine keeps a graph-shaped metadata store in line with the tabular
schemas, assets and lineage links described by upstream systems.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var userFlag string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads best on a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&userFlag, "user", envOr("SCHEMA_ENGINE_USER", "cli"), "User id recorded on writes")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
