package storage

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/abdul-nishar/Entertainment-API/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client
var s3Cfg config.StorageConfig
var presignClient *s3.PresignClient

// InitS3Client wires the poster image bucket. Credentials come from the
// default provider chain (env locally, IAM role in production).
func InitS3Client() {
	log.Println("Initializing AWS S3 client...")

	s3Cfg = config.LoadStorageConfig()

	opts := []func(*aws_config.LoadOptions) error{
		aws_config.WithRegion(s3Cfg.Region),
	}

	cfg, err := aws_config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Fatalf("failed to load AWS config for S3: %v", err)
	}

	var clientOpts []func(*s3.Options)
	if s3Cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(s3Cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	s3Client = s3.NewFromConfig(cfg, clientOpts...)
	presignClient = s3.NewPresignClient(s3Client)

	log.Println("✅ AWS S3 client initialized. Bucket:", s3Cfg.Bucket)
}

// UploadFile stores an uploaded poster image and returns its object key.
func UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, key string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	uploader := manager.NewUploader(s3Client)

	uploadInput := &s3.PutObjectInput{
		Bucket:      aws.String(s3Cfg.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	}

	_, err = uploader.Upload(ctx, uploadInput)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return key, nil
}

// GetPresignedURL builds a time-limited URL for reading a stored poster.
func GetPresignedURL(key string) (string, error) {
	if presignClient == nil {
		return "", fmt.Errorf("storage is not initialized")
	}

	req, err := presignClient.PresignGetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s3Cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s3Cfg.PresignTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign URL: %w", err)
	}
	return req.URL, nil
}

// DeleteFile removes a stored object.
func DeleteFile(ctx context.Context, key string) error {
	if s3Client == nil {
		return fmt.Errorf("storage is not initialized")
	}

	_, err := s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s3Cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete S3 object %s: %w", key, err)
	}
	return nil
}
