package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"truck-dispatch/internal/logx"
)

// LoadHandler serves HTTP endpoints for load resources.
type LoadHandler struct {
	usecase loadUsecase
	logger  logx.Logger
}

// NewLoadHandler creates a new LoadHandler.
func NewLoadHandler(logger logx.Logger, uc loadUsecase) *LoadHandler {
	return &LoadHandler{usecase: uc, logger: orNop(logger)}
}

// Create handles POST /loads.
// @Summary Create a load
// @Tags loads
// @Accept json
// @Produce json
// @Param request body createLoadRequest true "Load payload"
// @Success 201 {object} loadDTO
// @Failure 400 {object} ErrorResponse "invalid input"
// @Router /loads [post]
func (h *LoadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLoadRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	l, err := h.usecase.Create(r.Context(), req.Origin, req.Destination, req.CargoType)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/loads/"+l.ID.String())
	writeJSON(h.logger, w, r, http.StatusCreated, loadToResponse(*l))
}

// List handles GET /loads.
func (h *LoadHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.FindAll(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loadsToResponse(list))
}

// GetByID handles GET /loads/{id}.
func (h *LoadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	l, err := h.usecase.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loadToResponse(*l))
}

// Update handles PATCH /loads/{id} with partial updates from the request body.
func (h *LoadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateLoadRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	l, err := h.usecase.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loadToResponse(*l))
}
