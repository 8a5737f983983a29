package config

import (
	"fmt"
	"time"

	"github.com/docker/go-units"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env    Env
	Server ServerConfig
	Minio  MinioConfig
	Upload UploadConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

// MinioConfig configures the object-store client pair. When PublicEndpoint is
// set, presigned URLs are signed against it instead of Endpoint, so that the
// signature's embedded host matches the one the eventual caller will contact
// (internal vs. public network addressing).
type MinioConfig struct {
	Endpoint             string        `envconfig:"MINIO_ENDPOINT" required:"true"`
	PublicEndpoint       string        `envconfig:"MINIO_PUBLIC_ENDPOINT"`
	BucketName           string        `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey            string        `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey            string        `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL               bool          `envconfig:"MINIO_USE_SSL" default:"false"`
	ServerSideEncryption bool          `envconfig:"MINIO_SERVER_SIDE_ENCRYPTION" default:"false"`
	PresignTTL           time.Duration `envconfig:"MINIO_PRESIGN_TTL" default:"300s"`
}

type UploadConfig struct {
	AcceptedContentType string   `envconfig:"UPLOAD_ACCEPTED_CONTENT_TYPE" default:"application/pdf"`
	ChunkSize           ByteSize `envconfig:"UPLOAD_CHUNK_SIZE" default:"5MB"`
	SingleUploadMaxSize ByteSize `envconfig:"UPLOAD_SINGLE_UPLOAD_MAX_SIZE" default:"10MB"`
	MaxFiles            int      `envconfig:"UPLOAD_MAX_FILES" default:"200"`
	Concurrency         int      `envconfig:"UPLOAD_CONCURRENCY" default:"5"`
}

// ByteSize is an int64 byte count that accepts human-readable env values
// such as "5MB" or "512KB" (binary multiples).
type ByteSize int64

// Decode implements envconfig.Decoder.
func (b *ByteSize) Decode(value string) error {
	n, err := units.RAMInBytes(value)
	if err != nil {
		return fmt.Errorf("invalid byte size %q: %w", value, err)
	}
	*b = ByteSize(n)
	return nil
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
