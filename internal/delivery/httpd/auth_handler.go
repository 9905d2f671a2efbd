package httpd

import (
	"net/http"

	"github.com/RubachokBoss/school-monitoring/internal/models"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.authService.Logout(ctx, tokenFromContext(ctx)); err != nil {
		h.handleServiceError(w, err, "logout")
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	admin := adminFromContext(r.Context())
	if admin == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, models.MeResponse{
		Email: admin.Email,
		Name:  admin.Name,
	})
}
