package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steve-jordahllabs/ceph-notification-mgmt/pkg/notification"
)

// createAMQPTopicCmd represents the create-amqp-topic command
var createAMQPTopicCmd = &cobra.Command{
	Use:   "create-amqp-topic",
	Short: "Create or update an AMQP-backed notification topic",
	Long: `Register a topic with the gateway that publishes events to an AMQP exchange
(e.g. RabbitMQ). The AMQP URI is host:port/vhost without a scheme: amqps:// is
used when --ca-location is given, amqp:// otherwise.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		exchange, _ := cmd.Flags().GetString("exchange")
		amqpURI, _ := cmd.Flags().GetString("amqp-uri")
		caLocation, _ := cmd.Flags().GetString("ca-location")
		verifySSL, _ := cmd.Flags().GetBool("verify-ssl")
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		mgr, err := newManager(ctx)
		if err != nil {
			return err
		}
		topicARN, err := mgr.CreateAMQPTopic(ctx, notification.AMQPTopicParams{
			Name:       name,
			Exchange:   exchange,
			AMQPURI:    amqpURI,
			CALocation: caLocation,
			VerifySSL:  verifySSL,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Topic created successfully with ARN: %s\n", topicARN)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createAMQPTopicCmd)
	createAMQPTopicCmd.Flags().String("name", "", "Name of the topic to create")
	createAMQPTopicCmd.MarkFlagRequired("name")
	createAMQPTopicCmd.Flags().String("exchange", "", "AMQP exchange to publish events to")
	createAMQPTopicCmd.MarkFlagRequired("exchange")
	createAMQPTopicCmd.Flags().String("amqp-uri", "", "AMQP endpoint URI (host:port/vhost)")
	createAMQPTopicCmd.MarkFlagRequired("amqp-uri")
	createAMQPTopicCmd.Flags().String("ca-location", "", "Path to a CA certificate for the AMQP endpoint")
	createAMQPTopicCmd.Flags().Bool("verify-ssl", false, "Verify the AMQP endpoint's TLS certificate")
}
