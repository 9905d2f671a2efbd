package httpd

import (
	"net/http"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) SearchStudents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	students, err := h.studentService.SearchStudents(r.Context(), query.Get("name"), query.Get("classroom_id"))
	if err != nil {
		h.handleServiceError(w, err, "search students")
		return
	}

	writeJSON(w, http.StatusOK, students)
}

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	student, err := h.studentService.CreateStudent(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create student")
		return
	}

	writeJSON(w, http.StatusOK, models.CreatedResponse{ID: student.ID})
}

func (h *Handler) GetStudentReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.StudentReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "build student report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) SearchTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teacherService.SearchTeachers(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.handleServiceError(w, err, "search teachers")
		return
	}

	writeJSON(w, http.StatusOK, teachers)
}

func (h *Handler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeacherRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	teacher, err := h.teacherService.CreateTeacher(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create teacher")
		return
	}

	writeJSON(w, http.StatusOK, models.CreatedResponse{ID: teacher.ID})
}

func (h *Handler) GetTeacherReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.TeacherPerformance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "build teacher report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
