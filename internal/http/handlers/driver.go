package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/logx"
)

// DriverHandler serves HTTP endpoints for driver resources.
type DriverHandler struct {
	usecase driverUsecase
	logger  logx.Logger
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(logger logx.Logger, uc driverUsecase) *DriverHandler {
	return &DriverHandler{usecase: uc, logger: orNop(logger)}
}

// Create handles POST /drivers.
// @Summary Register a driver
// @Tags drivers
// @Accept json
// @Produce json
// @Param request body createDriverRequest true "Driver payload"
// @Success 201 {object} driverDTO
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 409 {object} ErrorResponse "license number already exists"
// @Router /drivers [post]
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.usecase.Create(r.Context(), req.Name, req.LicenseNumber)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/drivers/"+d.ID.String())
	writeJSON(h.logger, w, r, http.StatusCreated, driverToResponse(*d))
}

// GetByID handles GET /drivers/{id}.
func (h *DriverHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	d, err := h.usecase.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, driverToResponse(*d))
}

// UpdateStatus handles PATCH /drivers/{id}/status.
func (h *DriverHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.usecase.UpdateStatus(r.Context(), chi.URLParam(r, "id"), domain.DriverStatus(req.Status))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, driverToResponse(*d))
}
