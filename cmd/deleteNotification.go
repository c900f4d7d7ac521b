package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete bucket notifications",
	Long: `Delete notification rules from a bucket. With --id, only the named rule is
removed (the configuration is read, the rule dropped, and the remainder
written back). Without --id, all rules are removed by submitting an empty
configuration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, _ := cmd.Flags().GetString("bucket")
		id, _ := cmd.Flags().GetString("id")
		owner, _ := cmd.Flags().GetString("owner")
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		mgr, err := newManager(ctx)
		if err != nil {
			return err
		}
		if id == "" {
			if _, err := mgr.DeleteAllNotifications(ctx, bucket, owner); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "All notifications deleted from bucket '%s'\n", bucket)
			return nil
		}
		if _, err := mgr.DeleteNotification(ctx, bucket, id, owner); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Notification '%s' deleted from bucket '%s'\n", id, bucket)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().String("bucket", "", "Name of the bucket")
	deleteCmd.MarkFlagRequired("bucket")
	deleteCmd.Flags().String("id", "", "Identifier of a single notification rule to delete")
	deleteCmd.Flags().String("owner", "", "Expected bucket owner ID")
}
