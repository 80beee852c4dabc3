package history

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splitcheck/splitcheck/pkg/middleware"
	"github.com/splitcheck/splitcheck/pkg/response"
)

// Handler handles HTTP requests for scan history
type Handler struct {
	service *Service
}

// NewHandler creates a new history handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for history endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	return r
}

// List handles GET /history
// @Summary      List the device's scanned bills
// @Description  Scan history for the calling device, newest first
// @Tags         history
// @Produce      json
// @Param        limit query int false "Maximum entries" default(50)
// @Success      200 {object} response.APIResponse{data=[]EntryResponse}
// @Router       /history [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.GetDeviceID(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.service.List(r.Context(), deviceID, limit)
	if err != nil {
		response.InternalError(w, "Failed to list history")
		return
	}

	entryResponses := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		entryResponses[i] = e.ToResponse()
	}

	response.JSON(w, http.StatusOK, entryResponses)
}
