package notification_test

import (
	"context"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// mockS3Client keeps a single bucket notification configuration in memory so
// that a PUT is visible to a subsequent GET, the way the gateway behaves.
type mockS3Client struct {
	stored s3types.NotificationConfiguration

	buckets []s3types.Bucket

	getErr  error
	putErr  error
	listErr error

	getInputs  []*awss3.GetBucketNotificationConfigurationInput
	putInputs  []*awss3.PutBucketNotificationConfigurationInput
	listCalls  int
	totalCalls int
}

func (m *mockS3Client) ListBuckets(ctx context.Context, params *awss3.ListBucketsInput, optFns ...func(*awss3.Options)) (*awss3.ListBucketsOutput, error) {
	m.totalCalls++
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return &awss3.ListBucketsOutput{Buckets: m.buckets}, nil
}

func (m *mockS3Client) GetBucketNotificationConfiguration(ctx context.Context, params *awss3.GetBucketNotificationConfigurationInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketNotificationConfigurationOutput, error) {
	m.totalCalls++
	m.getInputs = append(m.getInputs, params)
	if m.getErr != nil {
		return nil, m.getErr
	}
	return &awss3.GetBucketNotificationConfigurationOutput{
		TopicConfigurations:          m.stored.TopicConfigurations,
		QueueConfigurations:          m.stored.QueueConfigurations,
		LambdaFunctionConfigurations: m.stored.LambdaFunctionConfigurations,
	}, nil
}

func (m *mockS3Client) PutBucketNotificationConfiguration(ctx context.Context, params *awss3.PutBucketNotificationConfigurationInput, optFns ...func(*awss3.Options)) (*awss3.PutBucketNotificationConfigurationOutput, error) {
	m.totalCalls++
	m.putInputs = append(m.putInputs, params)
	if m.putErr != nil {
		return nil, m.putErr
	}
	if params.NotificationConfiguration != nil {
		m.stored = *params.NotificationConfiguration
	}
	return &awss3.PutBucketNotificationConfigurationOutput{}, nil
}

type mockSNSClient struct {
	topicARN string
	topics   []snstypes.Topic
	attrs    map[string]string

	createErr error
	deleteErr error
	getErr    error
	listErr   error

	createInputs []*awssns.CreateTopicInput
	deleteInputs []*awssns.DeleteTopicInput
	getInputs    []*awssns.GetTopicAttributesInput
	totalCalls   int
}

func (m *mockSNSClient) CreateTopic(ctx context.Context, params *awssns.CreateTopicInput, optFns ...func(*awssns.Options)) (*awssns.CreateTopicOutput, error) {
	m.totalCalls++
	m.createInputs = append(m.createInputs, params)
	if m.createErr != nil {
		return nil, m.createErr
	}
	arn := m.topicARN
	return &awssns.CreateTopicOutput{TopicArn: &arn}, nil
}

func (m *mockSNSClient) DeleteTopic(ctx context.Context, params *awssns.DeleteTopicInput, optFns ...func(*awssns.Options)) (*awssns.DeleteTopicOutput, error) {
	m.totalCalls++
	m.deleteInputs = append(m.deleteInputs, params)
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	return &awssns.DeleteTopicOutput{}, nil
}

func (m *mockSNSClient) ListTopics(ctx context.Context, params *awssns.ListTopicsInput, optFns ...func(*awssns.Options)) (*awssns.ListTopicsOutput, error) {
	m.totalCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return &awssns.ListTopicsOutput{Topics: m.topics}, nil
}

func (m *mockSNSClient) GetTopicAttributes(ctx context.Context, params *awssns.GetTopicAttributesInput, optFns ...func(*awssns.Options)) (*awssns.GetTopicAttributesOutput, error) {
	m.totalCalls++
	m.getInputs = append(m.getInputs, params)
	if m.getErr != nil {
		return nil, m.getErr
	}
	return &awssns.GetTopicAttributesOutput{Attributes: m.attrs}, nil
}
