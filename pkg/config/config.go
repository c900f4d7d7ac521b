// Package config holds the gateway connection settings and turns them into an
// AWS SDK configuration.
package config

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"gopkg.in/yaml.v3"
)

const DefaultRegion = "us-east-1"

type Config struct {
	// Endpoint is the URL of the S3-compatible gateway (e.g. Ceph RGW).
	// When empty, the SDK falls back to its own endpoint resolution.
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Region    string `yaml:"region"`
	// Profile names a shared AWS config profile; it takes precedence over
	// explicit keys.
	Profile string `yaml:"profile,omitempty"`
	// Insecure disables TLS certificate verification, which is common for
	// RGW deployments with self-signed certificates.
	Insecure bool `yaml:"insecure,omitempty"`
}

func (c *Config) ValidateAndSetDefaults() error {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.Profile != "" {
		return nil
	}
	if c.AccessKey != "" && c.SecretKey == "" {
		return fmt.Errorf("secretKey is required when accessKey is set")
	}
	if c.SecretKey != "" && c.AccessKey == "" {
		return fmt.Errorf("accessKey is required when secretKey is set")
	}
	return nil
}

// LoadFile reads settings from a YAML file. Flags and environment variables
// layered on top by the caller take precedence.
func LoadFile(path string) (*Config, error) {
	configBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(configBytes, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &c, nil
}

// AWSConfig builds the SDK configuration: shared profile or static
// credentials, custom base endpoint, optional insecure transport.
func (c *Config) AWSConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.Region),
	}
	if c.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(c.Profile))
	} else if c.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}
	if c.Endpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(c.Endpoint))
	}
	if c.Insecure {
		opts = append(opts, awsconfig.WithHTTPClient(&http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return awsCfg, nil
}
