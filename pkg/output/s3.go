package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// ErrMissingBucket is returned when publishing is requested without a bucket
var ErrMissingBucket = errors.New("S3 bucket not configured")

// S3Config holds the object store settings
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Optional; set for S3-compatible stores
	AccessKey string
	SecretKey string
}

// S3ConfigFromEnv reads S3_BUCKET, S3_REGION, S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY
func S3ConfigFromEnv() S3Config {
	return S3Config{
		Bucket:    os.Getenv("S3_BUCKET"),
		Region:    os.Getenv("S3_REGION"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
	}
}

// S3Publisher uploads encoded renders to a bucket
type S3Publisher struct {
	client s3iface.S3API
	bucket string
}

// NewS3Publisher creates a session from config. Static credentials are used when both
// keys are set, otherwise the SDK's default credential chain applies.
func NewS3Publisher(config S3Config) (*S3Publisher, error) {
	if config.Bucket == "" {
		return nil, ErrMissingBucket
	}

	awsConfig := &aws.Config{Region: aws.String(config.Region)}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if config.AccessKey != "" && config.SecretKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return newS3PublisherWithClient(s3.New(sess), config.Bucket), nil
}

func newS3PublisherWithClient(client s3iface.S3API, bucket string) *S3Publisher {
	return &S3Publisher{client: client, bucket: bucket}
}

// Publish uploads data under key
func (p *S3Publisher) Publish(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// Bucket returns the destination bucket
func (p *S3Publisher) Bucket() string {
	return p.bucket
}
