package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	s3client "github.com/steve-jordahllabs/ceph-notification-mgmt/pkg/aws/client/s3"
	snsclient "github.com/steve-jordahllabs/ceph-notification-mgmt/pkg/aws/client/sns"
	"github.com/steve-jordahllabs/ceph-notification-mgmt/pkg/notification"
)

const requestTimeout = 30 * time.Second

func newManager(ctx context.Context) (*notification.Manager, error) {
	awsCfg, err := settings.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return notification.NewManager(s3client.GetClient(awsCfg), snsclient.GetClient(awsCfg), logger)
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := notification.RenderJSON(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
