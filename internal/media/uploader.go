// Package media stores recipe photos in S3 and hands out presigned links.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/fridgechef/config"
	"github.com/pageza/fridgechef/internal/logging"
)

// MaxImageSize bounds an uploaded recipe photo
const MaxImageSize = 10 << 20

var (
	ErrNotImage      = errors.New("file is not an image")
	ErrImageTooLarge = errors.New("image exceeds maximum size")
)

// ObjectPutter is the part of *s3.Client used for uploads
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Presigner is the part of *s3.PresignClient used for links
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Uploader writes recipe images to a bucket
type Uploader struct {
	putter    ObjectPutter
	presigner Presigner
	bucket    string
	expiry    time.Duration
	logger    *zap.Logger
}

// NewUploader builds an Uploader from explicit dependencies
func NewUploader(putter ObjectPutter, presigner Presigner, bucket string, expiry time.Duration, logger *zap.Logger) *Uploader {
	return &Uploader{
		putter:    putter,
		presigner: presigner,
		bucket:    bucket,
		expiry:    expiry,
		logger:    logging.OrNop(logger),
	}
}

// NewS3Uploader builds an Uploader over the configured bucket
func NewS3Uploader(s3cfg *config.S3Config, expiry time.Duration, logger *zap.Logger) *Uploader {
	return NewUploader(s3cfg.Client, s3.NewPresignClient(s3cfg.Client), s3cfg.BucketName, expiry, logger)
}

// UploadRecipeImage stores body under recipes/<userID>/ and returns a
// presigned GET URL for it
func (u *Uploader) UploadRecipeImage(ctx context.Context, userID, filename string, body io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(body, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mtype.String())
	}

	key := ObjectKey(userID, filename, mtype.Extension())
	_, err = u.putter.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mtype.String()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	req, err := u.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(u.expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign image URL: %w", err)
	}

	u.logger.Info("uploaded recipe image",
		zap.String("key", key),
		zap.String("content_type", mtype.String()),
		zap.Int("size", len(data)))
	return req.URL, nil
}

// ObjectKey builds recipes/<userID>/<uuid><ext>. The file name's extension
// wins over the detected one.
func ObjectKey(userID, filename, detectedExt string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = detectedExt
	}
	return path.Join("recipes", userID, uuid.NewString()+ext)
}
