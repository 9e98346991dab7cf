package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/askahmah/v1/internal/domain/chat"
	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/pkg/errors"
)

// ChatHandlers handles conversation turn requests
type ChatHandlers struct {
	service inbound.ChatService
	logger  *zap.Logger
}

// NewChatHandlers creates a new chat handlers instance
func NewChatHandlers(service inbound.ChatService, logger *zap.Logger) *ChatHandlers {
	return &ChatHandlers{
		service: service,
		logger:  logger,
	}
}

type chatRequest struct {
	Messages []chat.UIMessage `json:"messages"`
}

// Converse handles POST /api/v1/chat?userId=...
// A failed turn still returns 200: the result carries an in-persona failure
// reply plus the failed/retryable flags instead of a bare 5xx.
func (h *ChatHandlers) Converse(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	if len(req.Messages) == 0 {
		writeError(w, h.logger, errors.NewBadRequestError("messages are required"))
		return
	}

	result, err := h.service.Converse(r.Context(), userID, req.Messages)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}
