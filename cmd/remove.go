package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"schema-engine/core/graph"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	semanticRemove string
	sourceRemove   string
	yesConfirm     bool
)

// removeCmd cascades the removal of a schema type.
var removeCmd = &cobra.Command{
	Use:   "remove <guid>",
	Short: "Remove a schema type and every attached attribute",
	Long: `Deletes each attribute attached to the schema type, then the schema type itself.

Examples:
  # Soft delete with interactive confirmation
  remove 3f1c...

  # Purge without prompting
  remove 3f1c... --semantic PURGE --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&semanticRemove, "semantic", string(graph.DeleteSoft), "Delete semantic (SOFT, PURGE or ARCHIVE)")
	removeCmd.Flags().StringVar(&sourceRemove, "source", "", "External source recorded on the deletes")
	removeCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	RootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	semantic, ok := graph.ParseDeleteSemantic(strings.ToUpper(semanticRemove))
	if !ok {
		return fmt.Errorf("unknown delete semantic %q", semanticRemove)
	}

	svc, err := bootstrap()
	if err != nil {
		return err
	}
	defer svc.logger.Sync()

	ctx := context.Background()
	guid := args[0]

	if entity, err := svc.store.GetEntity(ctx, guid); err == nil {
		attrs, err := svc.engine.SchemaAttributes(ctx, userFlag, guid)
		if err != nil {
			return err
		}
		svc.logger.Info("Schema type to remove",
			zap.String("qualifiedName", entity.QualifiedName),
			zap.Int("attributes", len(attrs)),
			zap.String("semantic", string(semantic)),
		)
	}

	if !confirmDestructiveAction() {
		svc.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	if err := svc.engine.RemoveSchemaType(ctx, userFlag, guid, svc.source(sourceRemove), semantic); err != nil {
		return err
	}
	svc.logger.Info("Schema type removed", zap.String("guid", guid))
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
