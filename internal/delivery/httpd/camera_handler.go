package httpd

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/service"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllCameras(w http.ResponseWriter, r *http.Request) {
	cameras, err := h.cameraService.GetAllCameras(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get cameras")
		return
	}

	writeJSON(w, http.StatusOK, cameras)
}

func (h *Handler) CreateCamera(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCameraRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	camera, err := h.cameraService.CreateCamera(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create camera")
		return
	}

	writeJSON(w, http.StatusOK, models.CreatedResponse{ID: camera.ID})
}

func (h *Handler) DeleteCamera(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.cameraService.DeleteCamera(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "delete camera")
		return
	}

	writeJSON(w, http.StatusOK, models.DeletedResponse{Deleted: deleted})
}

func (h *Handler) UploadSnapshot(w http.ResponseWriter, r *http.Request) {
	// кадр читаем целиком, чтобы знать размер объекта заранее
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Snapshot is too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Failed to read snapshot")
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "Snapshot body is empty")
		return
	}

	snapshot, err := h.cameraService.UploadSnapshot(
		r.Context(),
		chi.URLParam(r, "id"),
		bytes.NewReader(body),
		int64(len(body)),
		r.Header.Get("Content-Type"),
	)
	if err != nil {
		h.handleSnapshotError(w, err, "upload snapshot")
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	body, snapshot, err := h.cameraService.GetSnapshot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleSnapshotError(w, err, "get snapshot")
		return
	}
	defer body.Close()

	if snapshot.ContentType != "" {
		w.Header().Set("Content-Type", snapshot.ContentType)
	}
	if snapshot.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(snapshot.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		h.logger.Warn().Err(err).Str("camera_id", snapshot.CameraID).Msg("Snapshot stream interrupted")
	}
}

func (h *Handler) handleSnapshotError(w http.ResponseWriter, err error, operation string) {
	if errors.Is(err, service.ErrStorageUnavailable) {
		h.logger.Warn().Err(err).Msg("Snapshot storage unavailable")
		writeError(w, http.StatusInternalServerError, "Snapshot storage is not available")
		return
	}
	h.handleServiceError(w, err, operation)
}
