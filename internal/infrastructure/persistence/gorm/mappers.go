// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"github.com/askahmah/v1/internal/domain/chat"
	"github.com/askahmah/v1/internal/domain/inventory"
	"github.com/askahmah/v1/internal/domain/recipe"
)

// ItemToModel converts a domain inventory item to a GORM model
func ItemToModel(item *inventory.Item) *InventoryItemModel {
	return &InventoryItemModel{
		ID:          item.ID,
		UserID:      item.UserID,
		Name:        item.Name,
		Type:        string(item.Type),
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		DateAdded:   item.DateAdded,
		LastUpdated: item.LastUpdated,
	}
}

// ModelToItem converts a GORM model to a domain inventory item
func ModelToItem(model *InventoryItemModel) *inventory.Item {
	return &inventory.Item{
		ID:          model.ID,
		UserID:      model.UserID,
		Name:        model.Name,
		Type:        inventory.ItemType(model.Type),
		Quantity:    model.Quantity,
		Unit:        model.Unit,
		DateAdded:   model.DateAdded,
		LastUpdated: model.LastUpdated,
	}
}

// MessageToModel converts a domain message to a GORM model
func MessageToModel(message *chat.Message) *MessageModel {
	return &MessageModel{
		ID:        message.ID,
		UserID:    message.UserID,
		Role:      string(message.Role),
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}

// ModelToMessage converts a GORM model to a domain message
func ModelToMessage(model *MessageModel) *chat.Message {
	return &chat.Message{
		ID:        model.ID,
		UserID:    model.UserID,
		Role:      chat.Role(model.Role),
		Content:   model.Content,
		CreatedAt: model.CreatedAt,
	}
}

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	return &RecipeModel{
		ID:           r.ID,
		UserID:       r.UserID,
		Name:         r.Name,
		Instructions: r.Instructions,
		Tags:         StringSlice(r.Tags),
		MessageID:    r.MessageID,
		CreatedAt:    r.CreatedAt,
	}
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	return &recipe.Recipe{
		ID:           model.ID,
		UserID:       model.UserID,
		Name:         model.Name,
		Instructions: model.Instructions,
		Tags:         []string(model.Tags),
		MessageID:    model.MessageID,
		CreatedAt:    model.CreatedAt,
	}
}
