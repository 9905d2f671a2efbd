package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

type SnapshotRepository interface {
	Put(ctx context.Context, cameraID string, body io.Reader, size int64, contentType string) (*models.Snapshot, error)
	Get(ctx context.Context, cameraID string) (io.ReadCloser, *models.Snapshot, error)
}

type minioSnapshotRepository struct {
	client *minio.Client
	bucket string
	region string
	logger zerolog.Logger

	ensureMu      sync.Mutex
	bucketEnsured bool
}

// NewMinIOSnapshotRepository не проверяет доступность MinIO: бакет создаётся при первом обращении.
func NewMinIOSnapshotRepository(endpoint, accessKey, secretKey, bucket, region string, useSSL bool, logger zerolog.Logger) (SnapshotRepository, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.Info().
		Str("endpoint", endpoint).
		Str("bucket", bucket).
		Bool("ssl", useSSL).
		Msg("MinIO snapshot storage configured")

	return &minioSnapshotRepository{
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
	}, nil
}

func snapshotKey(cameraID string) string {
	return fmt.Sprintf("cameras/%s/latest", cameraID)
}

func (r *minioSnapshotRepository) ensureBucket(ctx context.Context) error {
	r.ensureMu.Lock()
	defer r.ensureMu.Unlock()
	if r.bucketEnsured {
		return nil
	}

	exists, err := r.client.BucketExists(ctx, r.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := r.client.MakeBucket(ctx, r.bucket, minio.MakeBucketOptions{Region: r.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		r.logger.Info().Str("bucket", r.bucket).Msg("Created new bucket")
	}

	r.bucketEnsured = true
	return nil
}

func (r *minioSnapshotRepository) Put(ctx context.Context, cameraID string, body io.Reader, size int64, contentType string) (*models.Snapshot, error) {
	if err := r.ensureBucket(ctx); err != nil {
		return nil, err
	}

	key := snapshotKey(cameraID)
	info, err := r.client.PutObject(ctx, r.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	r.logger.Debug().
		Str("camera_id", cameraID).
		Str("key", key).
		Str("etag", info.ETag).
		Int64("size", info.Size).
		Msg("Snapshot uploaded to MinIO")

	return &models.Snapshot{
		CameraID:    cameraID,
		Key:         key,
		Size:        info.Size,
		ContentType: contentType,
		UploadedAt:  time.Now().UTC(),
	}, nil
}

func (r *minioSnapshotRepository) Get(ctx context.Context, cameraID string) (io.ReadCloser, *models.Snapshot, error) {
	if err := r.ensureBucket(ctx); err != nil {
		return nil, nil, err
	}

	key := snapshotKey(cameraID)
	info, err := r.client.StatObject(ctx, r.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil, ErrSnapshotNotFound
		}
		return nil, nil, fmt.Errorf("failed to stat snapshot: %w", err)
	}

	object, err := r.client.GetObject(ctx, r.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return object, &models.Snapshot{
		CameraID:    cameraID,
		Key:         key,
		Size:        info.Size,
		ContentType: info.ContentType,
		UploadedAt:  info.LastModified,
	}, nil
}
