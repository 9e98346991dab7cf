// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/askahmah/v1/internal/domain/inventory"
	"github.com/askahmah/v1/internal/ports/outbound"
)

// InventoryRepository implements the inventory repository interface using GORM
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) outbound.InventoryRepository {
	return &InventoryRepository{db: db}
}

// Create inserts a new inventory row
func (r *InventoryRepository) Create(ctx context.Context, item *inventory.Item) error {
	model := ItemToModel(item)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	item.ID = model.ID
	return nil
}

// Update replaces an existing inventory row
func (r *InventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	model := ItemToModel(item)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("inventory item not found")
	}

	return nil
}

// FindByName looks up one row by (userID, type, name) with the name compared
// case-insensitively. LOWER() on both sides keeps the comparison portable
// across SQLite and PostgreSQL. Returns (nil, nil) when no row matches.
func (r *InventoryRepository) FindByName(ctx context.Context, userID string, itemType inventory.ItemType, name string) (*inventory.Item, error) {
	var model InventoryItemModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND LOWER(name) = LOWER(?)", userID, string(itemType), name).
		First(&model)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToItem(&model), nil
}

// FindByUser returns all rows for a user across both item types
func (r *InventoryRepository) FindByUser(ctx context.Context, userID string) ([]inventory.Item, error) {
	var models []InventoryItemModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_added ASC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]inventory.Item, 0, len(models))
	for i := range models {
		items = append(items, *ModelToItem(&models[i]))
	}

	return items, nil
}

// DeleteByName removes all rows matching the name case-insensitively for the
// user, regardless of item type. Deleting an absent name is a no-op.
func (r *InventoryRepository) DeleteByName(ctx context.Context, userID, name string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		Delete(&InventoryItemModel{})

	return result.Error
}
