package notification

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// DefaultEvents are the object operations a notification reacts to when no
// explicit event filter is given.
var DefaultEvents = []string{
	"s3:ObjectCreated:*",
	"s3:ObjectRemoved:*",
}

// Config identifies a single bucket notification rule: the target topic, the
// event-type filter, and optional key prefix/suffix filters. The gateway is
// the system of record; this struct only exists to build the request payload.
type Config struct {
	ID        string
	TopicARN  string
	Events    []string
	KeyPrefix string
	KeySuffix string
}

func (c Config) topicConfiguration() (s3types.TopicConfiguration, error) {
	if c.ID == "" {
		return s3types.TopicConfiguration{}, ErrNotificationIDEmpty
	}
	if c.TopicARN == "" {
		return s3types.TopicConfiguration{}, ErrTopicARNEmpty
	}
	events := c.Events
	if len(events) == 0 {
		events = DefaultEvents
	}
	topicCfg := s3types.TopicConfiguration{
		Id:       aws.String(c.ID),
		TopicArn: aws.String(c.TopicARN),
		Events:   make([]s3types.Event, 0, len(events)),
	}
	for _, event := range events {
		topicCfg.Events = append(topicCfg.Events, s3types.Event(event))
	}
	var rules []s3types.FilterRule
	if c.KeyPrefix != "" {
		rules = append(rules, s3types.FilterRule{
			Name:  s3types.FilterRuleNamePrefix,
			Value: aws.String(c.KeyPrefix),
		})
	}
	if c.KeySuffix != "" {
		rules = append(rules, s3types.FilterRule{
			Name:  s3types.FilterRuleNameSuffix,
			Value: aws.String(c.KeySuffix),
		})
	}
	if len(rules) > 0 {
		topicCfg.Filter = &s3types.NotificationConfigurationFilter{
			Key: &s3types.S3KeyFilter{FilterRules: rules},
		}
	}
	return topicCfg, nil
}
