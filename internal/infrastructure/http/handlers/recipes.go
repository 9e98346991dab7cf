package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/pkg/errors"
)

// RecipeHandlers handles saved-recipe REST requests
type RecipeHandlers struct {
	service  inbound.RecipeService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(service inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// List handles GET /api/v1/recipes?userId=...
func (h *RecipeHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	recipes, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: recipes})
}

// Save handles POST /api/v1/recipes?userId=...
func (h *RecipeHandlers) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var cmd inbound.SaveRecipeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid JSON body"))
		return
	}
	cmd.UserID = userID

	if err := h.validate.Struct(cmd); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	recipe, err := h.service.Save(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: recipe})
}

// Delete handles DELETE /api/v1/recipes/{id}?userId=...
func (h *RecipeHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	recipeID := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), recipeID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true})
}
