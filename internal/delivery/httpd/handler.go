package httpd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RubachokBoss/school-monitoring/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Services struct {
	Auth          service.AuthService
	Cameras       service.CameraService
	Classrooms    service.ClassroomService
	Students      service.StudentService
	Teachers      service.TeacherService
	Reports       service.ReportService
	Dashboard     service.DashboardService
	Notifications service.NotificationService
	Events        service.BehaviorEventService
	Seed          service.SeedService
	Probe         service.ProbeService
}

type Handler struct {
	authService         service.AuthService
	cameraService       service.CameraService
	classroomService    service.ClassroomService
	studentService      service.StudentService
	teacherService      service.TeacherService
	reportService       service.ReportService
	dashboardService    service.DashboardService
	notificationService service.NotificationService
	eventService        service.BehaviorEventService
	seedService         service.SeedService
	probeService        service.ProbeService
	maxUploadSize       int64
	logger              zerolog.Logger
}

func NewHandler(services Services, maxUploadSize int64, logger zerolog.Logger) *Handler {
	return &Handler{
		authService:         services.Auth,
		cameraService:       services.Cameras,
		classroomService:    services.Classrooms,
		studentService:      services.Students,
		teacherService:      services.Teachers,
		reportService:       services.Reports,
		dashboardService:    services.Dashboard,
		notificationService: services.Notifications,
		eventService:        services.Events,
		seedService:         services.Seed,
		probeService:        services.Probe,
		maxUploadSize:       maxUploadSize,
		logger:              logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	// публичные маршруты
	router.Get("/", h.Root)
	router.Get("/test", h.Probe)
	router.Post("/auth/login", h.Login)

	router.Group(func(r chi.Router) {
		r.Use(h.RequireAdmin)

		r.Post("/auth/logout", h.Logout)
		r.Get("/me", h.Me)

		r.Get("/stats/dashboard", h.GetDashboardStats)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.GetNotifications)
			r.Post("/", h.CreateNotification)
		})

		r.Route("/cameras", func(r chi.Router) {
			r.Get("/", h.GetAllCameras)
			r.Post("/", h.CreateCamera)
			r.Delete("/{id}", h.DeleteCamera)
			r.Put("/{id}/snapshot", h.UploadSnapshot)
			r.Get("/{id}/snapshot", h.GetSnapshot)
		})

		r.Route("/classrooms", func(r chi.Router) {
			r.Get("/", h.GetAllClassrooms)
			r.Post("/", h.CreateClassroom)
			r.Get("/{id}", h.GetClassroomByID)
			r.Patch("/{id}/timetable", h.UpdateTimetable)
		})

		r.Route("/students", func(r chi.Router) {
			r.Get("/", h.SearchStudents)
			r.Post("/", h.CreateStudent)
			r.Get("/{id}/report", h.GetStudentReport)
		})

		r.Route("/teachers", func(r chi.Router) {
			r.Get("/", h.SearchTeachers)
			r.Post("/", h.CreateTeacher)
			r.Get("/{id}/report", h.GetTeacherReport)
			r.Get("/{id}/performance", h.GetTeacherReport)
		})

		r.Post("/events", h.RecordEvent)
		r.Post("/seed", h.Seed)
	})
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"app":    "School Monitoring Admin API",
	})
}

func (h *Handler) Probe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.probeService.Probe(r.Context()))
}

// handleServiceError переводит ошибки сервисного слоя в HTTP-статусы.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidID), errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error().Err(err).Str("operation", operation).Msg("Service error")
		writeError(w, http.StatusInternalServerError, "Failed to "+operation)
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]interface{}{
		"error":  http.StatusText(status),
		"detail": detail,
	})
}
