package share

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitcheck/splitcheck/pkg/response"
)

// SummaryResponse carries the shareable bill text.
type SummaryResponse struct {
	Text string `json:"text"`
}

// Handler handles HTTP requests for bill sharing
type Handler struct {
	service *Service
}

// NewHandler creates a new share handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for share endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{sessionId}", h.Get)

	return r
}

// Get handles GET /share/{sessionId}
// @Summary      Get the shareable bill summary
// @Description  Plain-text bill summary with every amount formatted in the receipt's currency
// @Tags         share
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /share/{sessionId} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	text, err := h.service.Summary(chi.URLParam(r, "sessionId"))
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, SummaryResponse{Text: text})
}
