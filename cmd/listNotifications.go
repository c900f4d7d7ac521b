package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notification configuration of a bucket",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, _ := cmd.Flags().GetString("bucket")
		owner, _ := cmd.Flags().GetString("owner")
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		mgr, err := newManager(ctx)
		if err != nil {
			return err
		}
		output, err := mgr.ListNotifications(ctx, bucket, owner)
		if err != nil {
			return err
		}
		return printJSON(cmd, output)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("bucket", "", "Name of the bucket")
	listCmd.MarkFlagRequired("bucket")
	listCmd.Flags().String("owner", "", "Expected bucket owner ID")
}
