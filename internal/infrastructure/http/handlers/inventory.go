package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/pkg/errors"
)

// InventoryHandlers handles inventory REST requests
type InventoryHandlers struct {
	service  inbound.InventoryService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewInventoryHandlers creates a new inventory handlers instance
func NewInventoryHandlers(service inbound.InventoryService, logger *zap.Logger) *InventoryHandlers {
	return &InventoryHandlers{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// Get handles GET /api/v1/inventory?userId=...
// Responses are never cached: the client re-reads the inventory after every
// tool-driven mutation.
func (h *InventoryHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	dto, err := h.service.GetInventory(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: dto})
}

type addItemsRequest struct {
	Items []inbound.AddItemCommand `json:"items" validate:"required,min=1,dive"`
}

// Add handles POST /api/v1/inventory?userId=...
func (h *InventoryHandlers) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req addItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.service.AddItems(r.Context(), userID, req.Items); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true})
}

type removeItemsRequest struct {
	ItemNames []string `json:"itemNames" validate:"required,min=1"`
}

// Remove handles DELETE /api/v1/inventory?userId=...
func (h *InventoryHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req removeItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	if err := h.service.RemoveItems(r.Context(), userID, req.ItemNames); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true})
}
