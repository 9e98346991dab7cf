// Package recipe provides the application layer for saved recipes
package recipe

import (
	"context"

	"github.com/askahmah/v1/internal/domain/recipe"
	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/internal/ports/outbound"
	"github.com/askahmah/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the saved-recipe use cases
type Service struct {
	repo   outbound.RecipeRepository
	logger *zap.Logger
}

// NewService creates a new recipe service
func NewService(repo outbound.RecipeRepository, logger *zap.Logger) inbound.RecipeService {
	return &Service{
		repo:   repo,
		logger: logger.Named("recipe-service"),
	}
}

// Save persists a recipe the user explicitly saved from the conversation.
// There is no update operation; saving again creates a new row.
func (s *Service) Save(ctx context.Context, cmd inbound.SaveRecipeCommand) (*inbound.RecipeDTO, error) {
	entity, err := recipe.NewRecipe(cmd.UserID, cmd.Name, cmd.Instructions, cmd.Tags, cmd.MessageID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.logger.Info("Recipe saved",
		zap.String("user_id", cmd.UserID),
		zap.String("name", cmd.Name),
	)

	dto := entityToDTO(*entity)
	return &dto, nil
}

// List returns all recipes saved by the user
func (s *Service) List(ctx context.Context, userID string) ([]inbound.RecipeDTO, error) {
	if userID == "" {
		return nil, errors.NewBadRequestError("userId is required")
	}
	recipes, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}
	out := make([]inbound.RecipeDTO, len(recipes))
	for i, r := range recipes {
		out[i] = entityToDTO(r)
	}
	return out, nil
}

// Delete removes a saved recipe by id
func (s *Service) Delete(ctx context.Context, recipeID string) error {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return errors.NewBadRequestError("invalid recipe id")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}
	return nil
}

func entityToDTO(r recipe.Recipe) inbound.RecipeDTO {
	return inbound.RecipeDTO{
		ID:           r.ID.String(),
		UserID:       r.UserID,
		Name:         r.Name,
		Instructions: r.Instructions,
		Tags:         r.Tags,
		MessageID:    r.MessageID,
		CreatedAt:    r.CreatedAt,
	}
}
