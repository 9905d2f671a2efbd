package httpd

import (
	"net/http"

	"github.com/RubachokBoss/school-monitoring/internal/models"
)

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get dashboard stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationService.GetLatestNotifications(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get notifications")
		return
	}

	writeJSON(w, http.StatusOK, notifications)
}

func (h *Handler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNotificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	notification, err := h.notificationService.CreateNotification(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create notification")
		return
	}

	writeJSON(w, http.StatusOK, models.CreatedResponse{ID: notification.ID})
}

func (h *Handler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBehaviorEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.eventService.RecordEvent(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "record event")
		return
	}

	writeJSON(w, http.StatusOK, models.CreatedResponse{ID: event.ID})
}

func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.seedService.Seed(r.Context()); err != nil {
		h.handleServiceError(w, err, "seed demo data")
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}
