// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the HTTP layer and the model tools drive.
package inbound

import (
	"context"
	"time"

	"github.com/askahmah/v1/internal/domain/chat"
)

// InventoryService reconciles loosely-specified item descriptions into
// canonical, deduplicated inventory rows
type InventoryService interface {
	// AddItems normalizes and merges a batch of items for the user. Items
	// are processed independently in input order; storage failures propagate
	// and leave earlier items committed.
	AddItems(ctx context.Context, userID string, items []AddItemCommand) error

	// RemoveItems deletes items by name, case-insensitively, across both
	// item types. Absent names are silent no-ops.
	RemoveItems(ctx context.Context, userID string, names []string) error

	// GetInventory returns the user's full inventory partitioned by type
	GetInventory(ctx context.Context, userID string) (*InventoryDTO, error)
}

// AddItemCommand is one loosely-specified item in an add batch
type AddItemCommand struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Type     string  `json:"type" validate:"required,oneof=ingredient kitchenware"`
	Quantity float64 `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Unit     string  `json:"unit,omitempty" validate:"omitempty,max=32"`
}

// ItemDTO is the outward representation of an inventory row
type ItemDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	DateAdded   time.Time `json:"dateAdded"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// InventoryDTO partitions a user's inventory by item type
type InventoryDTO struct {
	IngredientInventory  []ItemDTO `json:"ingredientInventory"`
	KitchenwareInventory []ItemDTO `json:"kitchenwareInventory"`
}

// ChatService runs conversation turns and manages the message log
type ChatService interface {
	// Converse assembles the bounded context for the user's new turn, runs
	// the model/tool loop, and returns the assistant's reply. It does not
	// persist messages: the client saves each side of the exchange through
	// AppendMessage, which is what makes the assembler's splice correct.
	Converse(ctx context.Context, userID string, incoming []chat.UIMessage) (*TurnResult, error)

	// History returns the user's full persisted message log, oldest first
	History(ctx context.Context, userID string) ([]MessageDTO, error)

	// AppendMessage persists one message to the user's log
	AppendMessage(ctx context.Context, userID, role, content string) (*MessageDTO, error)
}

// MessageDTO is the outward representation of a persisted message
type MessageDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToolStep records one tool invocation made during a turn
type ToolStep struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// TurnResult is the outcome of one conversation turn. When the model
// boundary fails, Reply carries an in-persona failure message and Failed and
// Retryable describe the error instead of surfacing a bare 5xx to the user.
type TurnResult struct {
	Reply     string     `json:"reply"`
	ToolSteps []ToolStep `json:"toolSteps,omitempty"`
	Failed    bool       `json:"failed,omitempty"`
	Retryable bool       `json:"retryable,omitempty"`
}

// RecipeService manages the user's saved recipes
type RecipeService interface {
	Save(ctx context.Context, cmd SaveRecipeCommand) (*RecipeDTO, error)
	List(ctx context.Context, userID string) ([]RecipeDTO, error)
	Delete(ctx context.Context, recipeID string) error
}

// SaveRecipeCommand captures an explicit "save recipe" action
type SaveRecipeCommand struct {
	UserID       string   `json:"userId" validate:"required"`
	Name         string   `json:"name" validate:"required,min=1,max=200"`
	Instructions string   `json:"instructions" validate:"required"`
	Tags         []string `json:"tags,omitempty"`
	MessageID    string   `json:"messageId,omitempty"`
}

// RecipeDTO is the outward representation of a saved recipe
type RecipeDTO struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Instructions string    `json:"instructions"`
	Tags         []string  `json:"tags,omitempty"`
	MessageID    string    `json:"messageId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
