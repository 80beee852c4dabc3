package receipt

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitcheck/splitcheck/pkg/middleware"
	"github.com/splitcheck/splitcheck/pkg/response"
)

// Handler handles HTTP requests for receipt operations
type Handler struct {
	service *Service
}

// NewHandler creates a new receipt handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for receipt endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Ingest)
	r.Get("/{id}", h.GetByID)

	return r
}

// Ingest handles POST /receipts
// @Summary      Ingest a recognized receipt
// @Description  Normalize the raw output of the recognition pipeline into a splittable receipt
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        request body RecognitionResult true "Raw recognition result"
// @Success      201 {object} response.APIResponse{data=ReceiptResponse}
// @Failure      422 {object} response.APIResponse
// @Router       /receipts [post]
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.GetDeviceID(r.Context())

	var raw RecognitionResult
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		// A non-object payload or a non-array item list both land here.
		response.UnprocessableEntity(w, "Malformed recognition result")
		return
	}

	rcpt, err := h.service.Ingest(r.Context(), deviceID, &raw)
	if err != nil {
		if errors.Is(err, ErrMalformedReceipt) {
			response.UnprocessableEntity(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to ingest receipt")
		return
	}

	response.JSON(w, http.StatusCreated, rcpt.ToResponse())
}

// GetByID handles GET /receipts/{id}
// @Summary      Get receipt by ID
// @Description  Get a normalized receipt with its derived totals
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Success      200 {object} response.APIResponse{data=ReceiptResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /receipts/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rcpt, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get receipt")
		return
	}

	response.JSON(w, http.StatusOK, rcpt.ToResponse())
}
