package settlement

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitcheck/splitcheck/pkg/response"
)

// Handler handles HTTP requests for settlement views
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{sessionId}", h.Get)

	return r
}

// Get handles GET /settlements/{sessionId}
// @Summary      Get the settlement view for a session
// @Description  Per-participant owed amounts with claimed items, plus subtotal, service charge, VAT and total reconciliation
// @Tags         settlements
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=View}
// @Failure      404 {object} response.APIResponse
// @Router       /settlements/{sessionId} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Compute(chi.URLParam(r, "sessionId"))
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, view)
}
