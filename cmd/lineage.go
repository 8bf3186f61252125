package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sourceLineage string

// lineageCmd links two referenceables.
var lineageCmd = &cobra.Command{
	Use:   "lineage <source> <target>",
	Short: "Add a lineage mapping between two qualified names",
	Long: `Links source to target with a LineageMapping relationship.

A tabular schema type endpoint attached to an asset is replaced by that asset.
Linking the same pair twice is a no-op.`,
	Args: cobra.ExactArgs(2),
	RunE: runLineage,
}

func init() {
	lineageCmd.Flags().StringVar(&sourceLineage, "source", "", "External source tagged on the relationship")
	RootCmd.AddCommand(lineageCmd)
}

func runLineage(cmd *cobra.Command, args []string) error {
	svc, err := bootstrap()
	if err != nil {
		return err
	}
	defer svc.logger.Sync()

	lineage, err := svc.engine.AddLineageMapping(context.Background(), userFlag, args[0], args[1], svc.source(sourceLineage))
	if err != nil {
		return err
	}

	svc.logger.Info("Lineage mapping added",
		zap.String("guid", lineage.RelationshipGUID),
		zap.String("source", lineage.Source.Entity.QualifiedName),
		zap.Stringer("sourceResolution", lineage.Source.Resolution),
		zap.String("target", lineage.Target.Entity.QualifiedName),
		zap.Stringer("targetResolution", lineage.Target.Resolution),
	)
	return nil
}
