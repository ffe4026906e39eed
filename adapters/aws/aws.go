package aws

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/utils/helpers"
)

// AWSConfig holds the configuration for AWS services
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	SessionToken     string
	Endpoint         string
	S3ForcePathStyle bool
}

func NewAwsConfig() *AWSConfig {
	return &AWSConfig{
		Region:           "us-east-1",
		S3ForcePathStyle: false,
	}
}

// ObjectGetter is the part of the S3 API the manager depends on.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// AWSManager provides read access to S3 objects.
type AWSManager struct {
	config       AWSConfig
	s3Client     ObjectGetter
	maxBodyBytes int64
}

// Option is a function that configures the AWSManager
type Option func(*AWSManager)

// WithRegion sets the AWS region
func WithRegion(region string) Option {
	return func(w *AWSManager) {
		w.config.Region = region
	}
}

// WithEndpoint sets the custom endpoint for S3
func WithEndpoint(endpoint string) Option {
	return func(w *AWSManager) {
		w.config.Endpoint = endpoint
	}
}

// WithS3ForcePathStyle sets the S3 force path style
func WithS3ForcePathStyle(forcePathStyle bool) Option {
	return func(w *AWSManager) {
		w.config.S3ForcePathStyle = forcePathStyle
	}
}

// WithStaticCredentials skips the default credential chain
func WithStaticCredentials(accessKeyID, secretAccessKey, sessionToken string) Option {
	return func(w *AWSManager) {
		w.config.AccessKeyID = accessKeyID
		w.config.SecretAccessKey = secretAccessKey
		w.config.SessionToken = sessionToken
	}
}

// WithObjectGetter replaces the S3 client, mostly for tests
func WithObjectGetter(getter ObjectGetter) Option {
	return func(w *AWSManager) {
		w.s3Client = getter
	}
}

// WithMaxBodyBytes caps the size of downloaded objects
func WithMaxBodyBytes(n int64) Option {
	return func(w *AWSManager) {
		if n > 0 {
			w.maxBodyBytes = n
		}
	}
}

// NewAWSWrapper creates a new instance of AWSManager with the provided options
func NewAWSWrapper(ctx context.Context, cfg AWSConfig, opts ...Option) (*AWSManager, error) {
	manager := &AWSManager{config: cfg, maxBodyBytes: 5 << 20}
	for _, opt := range opts {
		opt(manager)
	}
	if helpers.IsEmpty(manager.config.Region) {
		manager.config.Region = "us-east-1"
	}
	if manager.s3Client != nil {
		return manager, nil
	}

	awsConfig, err := loadAWSConfig(ctx, manager.config)
	if err != nil {
		return nil, blame.BucketCredentialError(err)
	}

	endpoint := manager.config.Endpoint
	forcePathStyle := manager.config.S3ForcePathStyle
	manager.s3Client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = forcePathStyle
	})

	return manager, nil
}

// loadAWSConfig creates the AWS SDK configuration
func loadAWSConfig(ctx context.Context, cfg AWSConfig) (aws.Config, error) {
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		// Use static credentials if provided
		return config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				cfg.SessionToken,
			)),
		)
	}
	// Otherwise, load from environment or AWS credential file
	return config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
}

// DownloadFromS3 downloads an object from an S3 bucket
func (a *AWSManager) DownloadFromS3(ctx context.Context, bucket, key string) ([]byte, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}

	output, err := a.s3Client.GetObject(ctx, input)
	if err != nil {
		return nil, blame.BucketDownloadError(bucket, key, err)
	}
	defer func() {
		_ = output.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(output.Body, a.maxBodyBytes))
	if err != nil {
		return nil, blame.BucketDownloadError(bucket, key, err)
	}

	return data, nil
}

// GetConfig returns the AWS config
func (a *AWSManager) GetConfig() AWSConfig {
	return a.config
}
