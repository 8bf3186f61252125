package cmd

import (
	"context"
	"fmt"

	"schema-engine/core/storage"
	"schema-engine/feature/bulksync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunSync bool
	sourceSync string
)

// syncCmd reconciles the desired-state documents held in the bucket.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile every desired-state document in the bucket",
	Long: `Reads every .yaml, .yml and .json document under the schema prefix and reconciles it.

Examples:
  # Validate documents and report what would be created
  sync --dry-run

  # Reconcile, tagging writes with an external source
  sync --source warehouse`,
	RunE: runSync,
}

// exportCmd writes a snapshot of one schema type.
var exportCmd = &cobra.Command{
	Use:   "export <qualifiedName>",
	Short: "Export a JSON snapshot of a schema type to the bucket",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Decode and validate documents without writing")
	syncCmd.Flags().StringVar(&sourceSync, "source", "", "External source tagged on writes (defaults to server.default_source)")
	syncCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(syncCmd)
}

func newSyncService(ctx context.Context, svc *services) (*bulksync.Service, error) {
	client, err := storage.NewClient(svc.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	if err := storage.EnsureBucket(ctx, client, svc.cfg.Storage.Bucket, svc.cfg.Storage.Region); err != nil {
		return nil, err
	}
	return bulksync.NewService(svc.engine, client, svc.cfg.Storage.Bucket, svc.cfg.Engine, svc.locks, svc.metrics, svc.logger), nil
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, err := bootstrap()
	if err != nil {
		return err
	}
	defer svc.logger.Sync()

	syncSvc, err := newSyncService(ctx, svc)
	if err != nil {
		return err
	}

	report, err := syncSvc.Run(ctx, bulksync.Options{
		UserID: userFlag,
		Source: svc.source(sourceSync),
		DryRun: dryRunSync,
	})
	if report == nil {
		return err
	}

	for _, r := range report.Results {
		fields := []zap.Field{
			zap.String("key", r.Key),
			zap.String("qualifiedName", r.QualifiedName),
			zap.String("status", r.Status),
		}
		if r.Action != "" {
			fields = append(fields, zap.String("action", r.Action))
		}
		if r.Error != "" {
			fields = append(fields, zap.String("error", r.Error))
			svc.logger.Warn("Document", fields...)
			continue
		}
		svc.logger.Info("Document", fields...)
	}

	if dryRunSync {
		svc.logger.Info("Dry-run mode: No changes were made.")
	}
	if err != nil {
		return fmt.Errorf("%d of %d documents failed: %w", report.Failed, report.Documents, err)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, err := bootstrap()
	if err != nil {
		return err
	}
	defer svc.logger.Sync()

	syncSvc, err := newSyncService(ctx, svc)
	if err != nil {
		return err
	}

	key, err := syncSvc.Export(ctx, userFlag, args[0])
	if err != nil {
		return err
	}
	fmt.Println(key)
	return nil
}
