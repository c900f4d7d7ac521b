// Package notification implements the management operations for bucket
// notifications and notification topics on an S3-compatible gateway. Every
// operation is a single synchronous call delegated to the SDK; failures are
// returned tagged with the operation name and no retry is attempted.
package notification

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/go-logr/logr"

	s3client "github.com/steve-jordahllabs/ceph-notification-mgmt/pkg/aws/client/s3"
	snsclient "github.com/steve-jordahllabs/ceph-notification-mgmt/pkg/aws/client/sns"
)

// Manager is a stateless wrapper around the S3 and SNS-compatible APIs of the
// gateway. The gateway remains the system of record for all notification and
// topic state.
type Manager struct {
	s3     s3client.Interface
	sns    snsclient.Interface
	logger logr.Logger
}

func NewManager(s3 s3client.Interface, sns snsclient.Interface, logger logr.Logger) (*Manager, error) {
	if s3 == nil {
		return nil, ErrS3ClientNil
	}
	if sns == nil {
		return nil, ErrSNSClientNil
	}
	return &Manager{
		s3:     s3,
		sns:    sns,
		logger: logger,
	}, nil
}

// ListBuckets enumerates all buckets visible to the authenticated user.
func (m *Manager) ListBuckets(ctx context.Context) (*awss3.ListBucketsOutput, error) {
	output, err := m.s3.ListBuckets(ctx, &awss3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("ListBuckets: %w", err)
	}
	return output, nil
}

// ListNotifications retrieves the notification configuration of a bucket.
// The owner is the expected bucket owner ID and may be empty.
func (m *Manager) ListNotifications(ctx context.Context, bucket string, owner string) (*awss3.GetBucketNotificationConfigurationOutput, error) {
	if bucket == "" {
		return nil, ErrBucketEmpty
	}
	input := &awss3.GetBucketNotificationConfigurationInput{
		Bucket: aws.String(bucket),
	}
	if owner != "" {
		input.ExpectedBucketOwner = aws.String(owner)
	}
	output, err := m.s3.GetBucketNotificationConfiguration(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("GetBucketNotificationConfiguration: %w", err)
	}
	return output, nil
}

// CreateNotification submits a notification configuration containing exactly
// the given rule. The gateway validates the referenced topic and rejects the
// request if it does not exist; that error is surfaced unchanged.
//
// Note that PutBucketNotificationConfiguration replaces the bucket's whole
// configuration, matching S3 semantics.
func (m *Manager) CreateNotification(ctx context.Context, bucket string, cfg Config) (*awss3.PutBucketNotificationConfigurationOutput, error) {
	if bucket == "" {
		return nil, ErrBucketEmpty
	}
	topicCfg, err := cfg.topicConfiguration()
	if err != nil {
		return nil, err
	}
	logger := m.logger.WithValues("bucket", bucket, "id", cfg.ID, "topicARN", cfg.TopicARN)
	logger.Info("Creating bucket notification")
	output, err := m.s3.PutBucketNotificationConfiguration(ctx, &awss3.PutBucketNotificationConfigurationInput{
		Bucket: aws.String(bucket),
		NotificationConfiguration: &s3types.NotificationConfiguration{
			TopicConfigurations: []s3types.TopicConfiguration{topicCfg},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("PutBucketNotificationConfiguration: %w", err)
	}
	logger.Info("Created bucket notification")
	return output, nil
}

// DeleteNotification removes a single notification rule by ID. S3 has no
// per-rule delete, so this reads the current configuration, drops the rule,
// and writes back the remainder. The owner is the expected bucket owner ID,
// checked on both requests, and may be empty.
func (m *Manager) DeleteNotification(ctx context.Context, bucket string, notificationID string, owner string) (*awss3.PutBucketNotificationConfigurationOutput, error) {
	if bucket == "" {
		return nil, ErrBucketEmpty
	}
	if notificationID == "" {
		return nil, ErrNotificationIDEmpty
	}
	getInput := &awss3.GetBucketNotificationConfigurationInput{
		Bucket: aws.String(bucket),
	}
	if owner != "" {
		getInput.ExpectedBucketOwner = aws.String(owner)
	}
	current, err := m.s3.GetBucketNotificationConfiguration(ctx, getInput)
	if err != nil {
		return nil, fmt.Errorf("GetBucketNotificationConfiguration: %w", err)
	}
	remaining := make([]s3types.TopicConfiguration, 0, len(current.TopicConfigurations))
	found := false
	for _, tc := range current.TopicConfigurations {
		if aws.ToString(tc.Id) == notificationID {
			found = true
			continue
		}
		remaining = append(remaining, tc)
	}
	if !found {
		return nil, fmt.Errorf("notification '%s' on bucket '%s': %w", notificationID, bucket, ErrNotificationNotFound)
	}
	logger := m.logger.WithValues("bucket", bucket, "id", notificationID)
	logger.Info("Deleting bucket notification")
	putInput := &awss3.PutBucketNotificationConfigurationInput{
		Bucket: aws.String(bucket),
		NotificationConfiguration: &s3types.NotificationConfiguration{
			TopicConfigurations:          remaining,
			QueueConfigurations:          current.QueueConfigurations,
			LambdaFunctionConfigurations: current.LambdaFunctionConfigurations,
			EventBridgeConfiguration:     current.EventBridgeConfiguration,
		},
	}
	if owner != "" {
		putInput.ExpectedBucketOwner = aws.String(owner)
	}
	output, err := m.s3.PutBucketNotificationConfiguration(ctx, putInput)
	if err != nil {
		return nil, fmt.Errorf("PutBucketNotificationConfiguration: %w", err)
	}
	logger.Info("Deleted bucket notification")
	return output, nil
}

// DeleteAllNotifications removes every notification rule from a bucket by
// submitting an empty configuration.
func (m *Manager) DeleteAllNotifications(ctx context.Context, bucket string, owner string) (*awss3.PutBucketNotificationConfigurationOutput, error) {
	if bucket == "" {
		return nil, ErrBucketEmpty
	}
	input := &awss3.PutBucketNotificationConfigurationInput{
		Bucket:                    aws.String(bucket),
		NotificationConfiguration: &s3types.NotificationConfiguration{},
	}
	if owner != "" {
		input.ExpectedBucketOwner = aws.String(owner)
	}
	logger := m.logger.WithValues("bucket", bucket)
	logger.Info("Deleting all bucket notifications")
	output, err := m.s3.PutBucketNotificationConfiguration(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("PutBucketNotificationConfiguration: %w", err)
	}
	logger.Info("Deleted all bucket notifications")
	return output, nil
}

// ListTopics enumerates the notification topics registered with the gateway.
func (m *Manager) ListTopics(ctx context.Context) (*awssns.ListTopicsOutput, error) {
	output, err := m.sns.ListTopics(ctx, &awssns.ListTopicsInput{})
	if err != nil {
		return nil, fmt.Errorf("ListTopics: %w", err)
	}
	return output, nil
}

// GetTopic retrieves the attributes of a single topic.
func (m *Manager) GetTopic(ctx context.Context, topicARN string) (*awssns.GetTopicAttributesOutput, error) {
	if topicARN == "" {
		return nil, ErrTopicARNEmpty
	}
	output, err := m.sns.GetTopicAttributes(ctx, &awssns.GetTopicAttributesInput{
		TopicArn: aws.String(topicARN),
	})
	if err != nil {
		return nil, fmt.Errorf("GetTopicAttributes: %w", err)
	}
	return output, nil
}

// CreateAMQPTopic creates (or updates, CreateTopic is idempotent) an
// AMQP-backed notification topic and returns its ARN.
func (m *Manager) CreateAMQPTopic(ctx context.Context, params AMQPTopicParams) (string, error) {
	if err := params.validate(); err != nil {
		return "", err
	}
	logger := m.logger.WithValues("name", params.Name, "exchange", params.Exchange)
	logger.Info("Creating AMQP topic")
	output, err := m.sns.CreateTopic(ctx, &awssns.CreateTopicInput{
		Name:       aws.String(params.Name),
		Attributes: params.attributes(),
	})
	if err != nil {
		return "", fmt.Errorf("CreateTopic: %w", err)
	}
	if output == nil || output.TopicArn == nil {
		return "", fmt.Errorf("CreateTopic: response contains no topic ARN")
	}
	logger.Info("Created AMQP topic", "ARN", *output.TopicArn)
	return *output.TopicArn, nil
}

// DeleteTopic deletes a notification topic. Notifications still referencing
// the topic are left to the gateway to reject or drop.
func (m *Manager) DeleteTopic(ctx context.Context, topicARN string) (*awssns.DeleteTopicOutput, error) {
	if topicARN == "" {
		return nil, ErrTopicARNEmpty
	}
	logger := m.logger.WithValues("ARN", topicARN)
	logger.Info("Deleting topic")
	output, err := m.sns.DeleteTopic(ctx, &awssns.DeleteTopicInput{
		TopicArn: aws.String(topicARN),
	})
	if err != nil {
		return nil, fmt.Errorf("DeleteTopic: %w", err)
	}
	logger.Info("Deleted topic")
	return output, nil
}
