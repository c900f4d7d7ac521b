package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// listBucketsCmd represents the list-buckets command
var listBucketsCmd = &cobra.Command{
	Use:   "list-buckets",
	Short: "List all buckets visible to the authenticated user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		mgr, err := newManager(ctx)
		if err != nil {
			return err
		}
		output, err := mgr.ListBuckets(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd, output)
	},
}

func init() {
	rootCmd.AddCommand(listBucketsCmd)
}
