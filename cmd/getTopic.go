package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// getTopicCmd represents the get-topic command
var getTopicCmd = &cobra.Command{
	Use:   "get-topic",
	Short: "Retrieve the attributes of a notification topic",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topicARN, _ := cmd.Flags().GetString("arn")
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		mgr, err := newManager(ctx)
		if err != nil {
			return err
		}
		output, err := mgr.GetTopic(ctx, topicARN)
		if err != nil {
			return err
		}
		return printJSON(cmd, output)
	},
}

func init() {
	rootCmd.AddCommand(getTopicCmd)
	getTopicCmd.Flags().String("arn", "", "ARN of the topic")
	getTopicCmd.MarkFlagRequired("arn")
}
