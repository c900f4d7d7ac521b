package s3

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// GetClient returns an S3 client suitable for S3-compatible gateways such as
// Ceph RGW: path-style addressing, since most RGW deployments do not resolve
// virtual-hosted bucket names.
func GetClient(cfg aws.Config) Interface {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})
}
