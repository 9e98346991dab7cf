package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/pkg/errors"
)

// MessageHandlers handles message log REST requests
type MessageHandlers struct {
	service  inbound.ChatService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewMessageHandlers creates a new message handlers instance
func NewMessageHandlers(service inbound.ChatService, logger *zap.Logger) *MessageHandlers {
	return &MessageHandlers{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// List handles GET /api/v1/messages?userId=...
func (h *MessageHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	messages, err := h.service.History(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: messages})
}

type appendMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

// Append handles POST /api/v1/messages?userId=...
// The client calls this before and after each chat turn (save-then-send), so
// the persisted log always leads the conversation the chat endpoint sees.
func (h *MessageHandlers) Append(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req appendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	message, err := h.service.AppendMessage(r.Context(), userID, req.Role, req.Content)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: message})
}
