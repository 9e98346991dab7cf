// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/askahmah/v1/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps an error to its HTTP status and writes the standard error
// shape. Application errors carry their own status; everything else is a 500.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := errors.GetAppError(err)
	status := appErr.StatusCode()
	message := appErr.Message
	details := appErr.Details

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}

	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// requireUserID extracts the userId query parameter, writing a 400 when it is
// missing. Returns ("", false) after writing the response.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   "userId is required",
		})
		return "", false
	}
	return userID, true
}
