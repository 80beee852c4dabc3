package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splitcheck/splitcheck/internal/receipt"
	"github.com/splitcheck/splitcheck/internal/split"
	"github.com/splitcheck/splitcheck/pkg/response"
)

// Handler handles HTTP requests for splitting session operations
type Handler struct {
	service *Service
}

// NewHandler creates a new session handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for session endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/participants", h.Join)
	r.Post("/{id}/participants/{participantId}/items/{position}/increment", h.Increment)
	r.Post("/{id}/participants/{participantId}/items/{position}/decrement", h.Decrement)
	r.Put("/{id}/items/{position}/split", h.SetSplitQuantity)

	return r
}

// Create handles POST /sessions
// @Summary      Start a splitting session
// @Description  Start a session over a scanned receipt, optionally joining initial participants
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body CreateSessionRequest true "Session creation request"
// @Success      201 {object} response.APIResponse{data=SessionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.ReceiptID == "" {
		response.BadRequest(w, "receipt_id is required")
		return
	}

	sess, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, receipt.ErrReceiptNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create session")
		return
	}

	response.JSON(w, http.StatusCreated, ToResponse(sess))
}

// GetByID handles GET /sessions/{id}
// @Summary      Get session state
// @Description  Get the live claim state of every line item and the participant list
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, ToResponse(sess))
}

// Join handles POST /sessions/{id}/participants
// @Summary      Join a session
// @Description  Add a participant with an empty selection to a running session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body JoinRequest true "Join request"
// @Success      201 {object} response.APIResponse{data=Participant}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id}/participants [post]
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Join(chi.URLParam(r, "id"), req.DisplayName)
	if err != nil {
		response.NotFound(w, err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, p)
}

// Increment handles POST /sessions/{id}/participants/{participantId}/items/{position}/increment
// @Summary      Claim one more share
// @Description  Claim one more share of a line item; a no-op once the item is fully claimed
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        participantId path string true "Participant ID"
// @Param        position path int true "Line item position"
// @Success      200 {object} response.APIResponse{data=ClaimResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id}/participants/{participantId}/items/{position}/increment [post]
func (h *Handler) Increment(w http.ResponseWriter, r *http.Request) {
	h.claim(w, r, h.service.Increment)
}

// Decrement handles POST /sessions/{id}/participants/{participantId}/items/{position}/decrement
// @Summary      Release one claimed share
// @Description  Release one claimed share of a line item; a no-op at zero
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        participantId path string true "Participant ID"
// @Param        position path int true "Line item position"
// @Success      200 {object} response.APIResponse{data=ClaimResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id}/participants/{participantId}/items/{position}/decrement [post]
func (h *Handler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.claim(w, r, h.service.Decrement)
}

func (h *Handler) claim(w http.ResponseWriter, r *http.Request, op func(sessionID, participantID string, position int) (*ClaimResponse, error)) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		response.BadRequest(w, "Invalid item position")
		return
	}

	state, err := op(chi.URLParam(r, "id"), chi.URLParam(r, "participantId"), position)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound),
			errors.Is(err, ErrParticipantNotFound),
			errors.Is(err, ErrItemNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to update selection")
		}
		return
	}

	response.JSON(w, http.StatusOK, state)
}

// SetSplitQuantity handles PUT /sessions/{id}/items/{position}/split
// @Summary      Reconfigure an item's split quantity
// @Description  Divide a line item into n equal shares, clamping claims that no longer fit
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        position path int true "Line item position"
// @Param        request body SetSplitQuantityRequest true "New split quantity"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id}/items/{position}/split [put]
func (h *Handler) SetSplitQuantity(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		response.BadRequest(w, "Invalid item position")
		return
	}

	var req SetSplitQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	sess, err := h.service.SetSplitQuantity(chi.URLParam(r, "id"), position, req.SplitQuantity)
	if err != nil {
		switch {
		case errors.Is(err, split.ErrInvalidSplitQuantity):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrSessionNotFound), errors.Is(err, split.ErrUnknownPosition):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to set split quantity")
		}
		return
	}

	response.JSON(w, http.StatusOK, ToResponse(sess))
}
