package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// deleteTopicCmd represents the delete-topic command
var deleteTopicCmd = &cobra.Command{
	Use:   "delete-topic",
	Short: "Delete a notification topic",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topicARN, _ := cmd.Flags().GetString("arn")
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		mgr, err := newManager(ctx)
		if err != nil {
			return err
		}
		if _, err := mgr.DeleteTopic(ctx, topicARN); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Topic '%s' deleted successfully\n", topicARN)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteTopicCmd)
	deleteTopicCmd.Flags().String("arn", "", "ARN of the topic to delete")
	deleteTopicCmd.MarkFlagRequired("arn")
}
