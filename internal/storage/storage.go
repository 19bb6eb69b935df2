// Package storage keeps uploaded poster images.  The local provider writes
// below a directory on disk; the S3 provider targets any S3-compatible
// bucket.  Handlers only see the Provider interface.
package storage

import (
	"errors"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/iliyamo/movie-catalog/internal/config"
)

// ErrNotFound is returned by Get when no object is stored under the key.
var ErrNotFound = errors.New("object not found")

// FileObject is a stored object opened for reading.  Callers close Body.
type FileObject struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	LastModified  time.Time
}

// Provider is implemented by every storage backend.
type Provider interface {
	Put(key string, body io.ReadSeeker, contentType, cacheControl string) error
	Get(key string) (*FileObject, error)
}

// New selects the backend named by cfg.Storage.Provider.
func New(cfg config.Config) (Provider, error) {
	if cfg.Storage.Provider == "s3" {
		s3Config := &aws.Config{
			Region:           aws.String(cfg.S3.Region),
			S3ForcePathStyle: aws.Bool(cfg.S3.Endpoint != ""),
		}
		if cfg.S3.Endpoint != "" {
			s3Config.Endpoint = aws.String(cfg.S3.Endpoint)
		}
		if cfg.S3.KeyID != "" {
			s3Config.Credentials = credentials.NewStaticCredentials(cfg.S3.KeyID, cfg.S3.Secret, "")
		}
		sess, err := session.NewSession(s3Config)
		if err != nil {
			return nil, err
		}
		return NewS3Provider(sess, cfg.S3.Bucket), nil
	}
	return NewLocalProvider(cfg.Upload.Dir)
}
