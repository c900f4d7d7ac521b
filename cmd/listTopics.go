package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// listTopicsCmd represents the list-topics command
var listTopicsCmd = &cobra.Command{
	Use:   "list-topics",
	Short: "List all notification topics registered with the gateway",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		mgr, err := newManager(ctx)
		if err != nil {
			return err
		}
		output, err := mgr.ListTopics(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd, output)
	},
}

func init() {
	rootCmd.AddCommand(listTopicsCmd)
}
