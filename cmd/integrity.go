package cmd

import (
	"context"
	"fmt"

	"schema-engine/core/storage"
	"schema-engine/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the entity store and bucket",
	Long:  `Checks the bucket prefixes, the store tables and the attributes left without a schema type.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), false, false, false)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket prefixes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// storeCmd represents the integrity store command
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Check the store tables and columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// orphansCmd represents the integrity orphans command
var orphansCmd = &cobra.Command{
	Use:   "orphans",
	Short: "Check and fix attributes with no owning schema type",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, storeCmd, orphansCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing prefixes")
	orphansCmd.Flags().BoolVar(&fixFlag, "fix", false, "Soft delete orphaned attributes")
}

func runIntegrityChecks(ctx context.Context, onlyStructure, onlyStore, onlyOrphans bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := bootstrap()
	if err != nil {
		return err
	}
	logg := svc.logger
	defer logg.Sync()
	cfg := svc.cfg

	// Storage is optional unless the structure check was asked for
	var client storage.Client
	if c, err := storage.NewClient(cfg.Storage); err != nil {
		if onlyStructure {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		logg.Warn("Storage client unavailable, skipping structure check", zap.Error(err))
	} else {
		client = c
	}

	checker := integrity.NewService(client, cfg.Storage.Bucket,
		[]string{cfg.Engine.SchemaPrefix, cfg.Engine.SnapshotPrefix},
		svc.db, svc.store, logg)

	all := !onlyStructure && !onlyStore && !onlyOrphans
	runStructure := onlyStructure || (all && client != nil)
	runStore := onlyStore || all
	runOrphans := onlyOrphans || all

	if runStructure {
		logg.Info("Checking bucket structure...")
		missing, err := checker.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing prefixes detected", zap.Strings("missing", missing))

			if onlyStructure && fixFlag {
				logg.Info("Fixing missing prefixes...")
				if err := checker.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else if onlyStructure {
				logg.Info("Run with --fix to create missing prefixes.")
			}
		}
	}

	if runStore {
		logg.Info("Checking store schema...")
		report, err := checker.CheckStore()
		if err != nil {
			logg.Error("Store schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Store schema matches expected definition.", zap.String("driver", report.Driver))
		} else {
			logg.Warn("Store schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status != "ok" && len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runOrphans {
		logg.Info("Checking orphaned attributes...")
		orphans, err := checker.CheckOrphans(ctx)
		if err != nil {
			return fmt.Errorf("orphan check failed: %w", err)
		}

		if len(orphans) == 0 {
			logg.Info("No orphaned attributes.")
			return nil
		}
		for _, o := range orphans {
			logg.Warn("Orphaned attribute", zap.String("qualifiedName", o.QualifiedName), zap.String("guid", o.GUID))
		}

		if onlyOrphans && fixFlag {
			if err := checker.FixOrphans(ctx, userFlag, orphans); err != nil {
				return fmt.Errorf("failed to fix orphans: %w", err)
			}
			logg.Info("Orphans removed successfully.", zap.Int("count", len(orphans)))
		} else if onlyOrphans {
			logg.Info("Run with --fix to soft delete orphaned attributes.")
		}
	}

	return nil
}
