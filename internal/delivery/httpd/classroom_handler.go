package httpd

import (
	"net/http"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllClassrooms(w http.ResponseWriter, r *http.Request) {
	classrooms, err := h.classroomService.GetAllClassrooms(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get classrooms")
		return
	}

	writeJSON(w, http.StatusOK, classrooms)
}

func (h *Handler) CreateClassroom(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClassroomRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	classroom, err := h.classroomService.CreateClassroom(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create classroom")
		return
	}

	writeJSON(w, http.StatusOK, models.CreatedResponse{ID: classroom.ID})
}

func (h *Handler) GetClassroomByID(w http.ResponseWriter, r *http.Request) {
	classroom, err := h.classroomService.GetClassroomByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get classroom")
		return
	}

	writeJSON(w, http.StatusOK, classroom)
}

// UpdateTimetable принимает расписание целиком: {"Mon": ["Math", ...], ...}.
func (h *Handler) UpdateTimetable(w http.ResponseWriter, r *http.Request) {
	var timetable models.Timetable
	if err := decodeJSON(r, &timetable); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid timetable")
		return
	}

	if err := h.classroomService.UpdateTimetable(r.Context(), chi.URLParam(r, "id"), timetable); err != nil {
		h.handleServiceError(w, err, "update timetable")
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}
