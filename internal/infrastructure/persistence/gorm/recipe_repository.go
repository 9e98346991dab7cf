package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/askahmah/v1/internal/domain/recipe"
	"github.com/askahmah/v1/internal/ports/outbound"
)

// RecipeRepository implements the saved-recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts a new saved recipe
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	rec.ID = model.ID
	return nil
}

// FindByUser returns the user's saved recipes, newest first
func (r *RecipeRepository) FindByUser(ctx context.Context, userID string) ([]recipe.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]recipe.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, *ModelToRecipe(&models[i]))
	}

	return recipes, nil
}

// Delete removes a saved recipe by id
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("recipe not found")
	}

	return nil
}
