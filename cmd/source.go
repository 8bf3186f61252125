package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var descriptionSource string

// sourceCmd groups the external source commands.
var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage the external sources that tag writes",
}

var sourceRegisterCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Register an external source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap()
		if err != nil {
			return err
		}
		defer svc.logger.Sync()

		src, err := svc.registry.Register(context.Background(), userFlag, args[0], descriptionSource)
		if err != nil {
			return err
		}
		svc.logger.Info("External source registered", zap.String("name", src.Name), zap.String("guid", src.GUID))
		return nil
	},
}

var sourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered external sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap()
		if err != nil {
			return err
		}
		defer svc.logger.Sync()

		sources, err := svc.registry.List(context.Background())
		if err != nil {
			return err
		}
		for _, s := range sources {
			fmt.Printf("%s\t%s\t%s\n", s.GUID, s.Name, s.Description)
		}
		return nil
	},
}

func init() {
	sourceRegisterCmd.Flags().StringVar(&descriptionSource, "description", "", "Free text description")
	sourceCmd.AddCommand(sourceRegisterCmd, sourceListCmd)
	RootCmd.AddCommand(sourceCmd)
}
