package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	appConfig "github.com/stockroomhq/stockroom-api/config"
)

// S3BlobStore implements BlobStore on an S3 bucket. Blobs live under the
// uploads/ key prefix.
type S3BlobStore struct {
	client *s3.Client
	bucket string
}

// InitS3BlobStore initializes the S3-backed blob store from AWS
// configuration and makes it the process-wide instance
func InitS3BlobStore() (*S3BlobStore, error) {
	cfg := appConfig.GetConfig()

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s := &S3BlobStore{
		client: s3.NewFromConfig(awsConfig),
		bucket: cfg.AWSS3Bucket,
	}
	blobStoreInstance = s
	return s, nil
}

func (s *S3BlobStore) key(name string) string {
	return "uploads/" + name
}

// Put uploads the blob content to the bucket
func (s *S3BlobStore) Put(name string, r io.Reader, contentType string) error {
	if err := validateBlobName(name); err != nil {
		return err
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read blob content: %w", err)
	}

	_, err = s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(name)),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// Get streams the blob content from the bucket
func (s *S3BlobStore) Get(name string) (io.ReadCloser, error) {
	if err := validateBlobName(name); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to fetch from S3: %w", err)
	}
	return out.Body, nil
}

// Delete removes the blob from the bucket
func (s *S3BlobStore) Delete(name string) error {
	if err := validateBlobName(name); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
