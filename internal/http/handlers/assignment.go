package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/logx"
)

// AssignmentHandler handles HTTP requests for assignment resources.
type AssignmentHandler struct {
	usecase assignmentUsecase
	logger  logx.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(logger logx.Logger, uc assignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc, logger: orNop(logger)}
}

// Create handles POST /assignments.
// @Summary Assign a driver to a load
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body createAssignmentRequest true "Assignment payload"
// @Success 201 {object} assignmentDTO
// @Failure 400 {object} ErrorResponse "driver or load not available"
// @Failure 404 {object} ErrorResponse "driver or load not found"
// @Failure 409 {object} ErrorResponse "driver already assigned to this load"
// @Failure 503 {object} ErrorResponse "retry later"
// @Router /assignments [post]
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAssignmentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	a, err := h.usecase.Create(r.Context(), req.DriverID, req.LoadID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/assignments/"+a.ID.String())
	writeJSON(h.logger, w, r, http.StatusCreated, assignmentToResponse(*a))
}

// GetByID handles GET /assignments/{id}.
func (h *AssignmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	a, err := h.usecase.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(*a))
}

// UpdateStatus handles PATCH /assignments/{id}/status.
// @Summary Complete, cancel or reopen an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param request body statusRequest true "Target status"
// @Success 200 {object} assignmentDTO
// @Failure 400 {object} ErrorResponse "invalid assignment status"
// @Failure 404 {object} ErrorResponse "assignment not found"
// @Router /assignments/{id}/status [patch]
func (h *AssignmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	a, err := h.usecase.UpdateStatus(r.Context(), chi.URLParam(r, "id"), domain.AssignmentStatus(req.Status))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(*a))
}
