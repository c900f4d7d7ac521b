package cmd

import (
	"context"
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/spf13/cobra"

	"github.com/steve-jordahllabs/ceph-notification-mgmt/pkg/notification"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a bucket notification referencing an existing topic",
	Long: `Create a notification rule on a bucket. The rule references a topic by ARN;
the topic must already be registered with the gateway (see create-amqp-topic),
otherwise the gateway rejects the request.

Without --events, the rule reacts to object creation and removal. --prefix and
--suffix restrict the rule to matching object keys.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, _ := cmd.Flags().GetString("bucket")
		topicARN, _ := cmd.Flags().GetString("topic-arn")
		id, _ := cmd.Flags().GetString("id")
		events, _ := cmd.Flags().GetStringSlice("events")
		prefix, _ := cmd.Flags().GetString("prefix")
		suffix, _ := cmd.Flags().GetString("suffix")
		if id == "" {
			id = fmt.Sprintf("notif-%s", petname.Generate(2, "-"))
		}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		mgr, err := newManager(ctx)
		if err != nil {
			return err
		}
		if _, err := mgr.CreateNotification(ctx, bucket, notification.Config{
			ID:        id,
			TopicARN:  topicARN,
			Events:    events,
			KeyPrefix: prefix,
			KeySuffix: suffix,
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Notification '%s' created successfully on bucket '%s'\n", id, bucket)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().String("bucket", "", "Name of the bucket")
	createCmd.MarkFlagRequired("bucket")
	createCmd.Flags().String("topic-arn", "", "ARN of the topic to deliver events to")
	createCmd.MarkFlagRequired("topic-arn")
	createCmd.Flags().String("id", "", "Identifier for the notification rule (auto-generated when empty)")
	createCmd.Flags().StringSlice("events", notification.DefaultEvents, "Event types triggering the notification")
	createCmd.Flags().String("prefix", "", "Only notify for object keys with this prefix")
	createCmd.Flags().String("suffix", "", "Only notify for object keys with this suffix")
}
