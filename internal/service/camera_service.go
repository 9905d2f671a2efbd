package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/rs/zerolog"
)

type CameraService interface {
	CreateCamera(ctx context.Context, req *models.CreateCameraRequest) (*models.Camera, error)
	GetAllCameras(ctx context.Context) ([]models.Camera, error)
	DeleteCamera(ctx context.Context, id string) (int64, error)
	UploadSnapshot(ctx context.Context, id string, body io.Reader, size int64, contentType string) (*models.Snapshot, error)
	GetSnapshot(ctx context.Context, id string) (io.ReadCloser, *models.Snapshot, error)
}

type cameraService struct {
	cameraRepo   repository.CameraRepository
	snapshotRepo repository.SnapshotRepository
	logger       zerolog.Logger
}

// NewCameraService принимает nil snapshotRepo, если MinIO не настроен.
func NewCameraService(
	cameraRepo repository.CameraRepository,
	snapshotRepo repository.SnapshotRepository,
	logger zerolog.Logger,
) CameraService {
	return &cameraService{
		cameraRepo:   cameraRepo,
		snapshotRepo: snapshotRepo,
		logger:       logger,
	}
}

func (s *cameraService) CreateCamera(ctx context.Context, req *models.CreateCameraRequest) (*models.Camera, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	camera := &models.Camera{
		ID:          newID(),
		ClassroomID: req.ClassroomID,
		Name:        req.Name,
		StreamURL:   req.StreamURL,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.cameraRepo.Create(ctx, camera); err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}

	s.logger.Info().
		Str("camera_id", camera.ID).
		Str("classroom_id", camera.ClassroomID).
		Msg("Camera created")

	return camera, nil
}

func (s *cameraService) GetAllCameras(ctx context.Context) ([]models.Camera, error) {
	cameras, err := s.cameraRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cameras: %w", err)
	}
	return cameras, nil
}

// DeleteCamera treats a malformed id as a delete that matched nothing.
func (s *cameraService) DeleteCamera(ctx context.Context, id string) (int64, error) {
	cameraID, err := parseID("camera", id)
	if err != nil {
		s.logger.Debug().Str("camera_id", id).Msg("Ignoring delete with malformed camera id")
		return 0, nil
	}

	deleted, err := s.cameraRepo.Delete(ctx, cameraID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete camera: %w", err)
	}

	if deleted > 0 {
		s.logger.Info().Str("camera_id", cameraID).Msg("Camera deleted")
	}

	return deleted, nil
}

func (s *cameraService) UploadSnapshot(ctx context.Context, id string, body io.Reader, size int64, contentType string) (*models.Snapshot, error) {
	cameraID, err := s.requireCamera(ctx, id)
	if err != nil {
		return nil, err
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	snapshot, err := s.snapshotRepo.Put(ctx, cameraID, body, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	s.logger.Info().
		Str("camera_id", cameraID).
		Int64("size", snapshot.Size).
		Msg("Camera snapshot stored")

	return snapshot, nil
}

func (s *cameraService) GetSnapshot(ctx context.Context, id string) (io.ReadCloser, *models.Snapshot, error) {
	cameraID, err := s.requireCamera(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	body, snapshot, err := s.snapshotRepo.Get(ctx, cameraID)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return nil, nil, fmt.Errorf("%w: snapshot", ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return body, snapshot, nil
}

func (s *cameraService) requireCamera(ctx context.Context, id string) (string, error) {
	if s.snapshotRepo == nil {
		return "", fmt.Errorf("%w: snapshot storage is not configured", ErrStorageUnavailable)
	}

	cameraID, err := parseID("camera", id)
	if err != nil {
		return "", err
	}

	exists, err := s.cameraRepo.Exists(ctx, cameraID)
	if err != nil {
		return "", fmt.Errorf("failed to check camera: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: camera", ErrNotFound)
	}

	return cameraID, nil
}
