package notification

import "errors"

var (
	ErrS3ClientNil  = errors.New("s3 client is nil")
	ErrSNSClientNil = errors.New("sns client is nil")

	ErrBucketEmpty         = errors.New("bucket name is empty")
	ErrTopicARNEmpty       = errors.New("topic ARN is empty")
	ErrNotificationIDEmpty = errors.New("notification ID is empty")

	ErrNotificationNotFound = errors.New("notification not found")
)
