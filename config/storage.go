package config

import (
	"os"
	"time"
)

// defaultPresignTTL bounds how long a presigned poster URL stays fetchable.
const defaultPresignTTL = 15 * time.Minute

// StorageConfig describes the poster image bucket.
type StorageConfig struct {
	Region string
	Bucket string
	// Endpoint overrides the AWS endpoint for S3-compatible stores
	// (MinIO locally); empty means real S3.
	Endpoint   string
	PresignTTL time.Duration
}

func LoadStorageConfig() StorageConfig {
	cfg := StorageConfig{
		Region:     os.Getenv("AWS_REGION"),
		Bucket:     os.Getenv("AWS_S3_BUCKET"),
		Endpoint:   os.Getenv("S3_ENDPOINT_URL"),
		PresignTTL: defaultPresignTTL,
	}

	if raw := os.Getenv("S3_PRESIGN_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			cfg.PresignTTL = ttl
		}
	}
	return cfg
}
