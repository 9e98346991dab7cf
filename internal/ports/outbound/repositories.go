// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/askahmah/v1/internal/domain/chat"
	"github.com/askahmah/v1/internal/domain/inventory"
	"github.com/askahmah/v1/internal/domain/recipe"
	"github.com/google/uuid"
)

// InventoryRepository defines the interface for inventory persistence.
// Every query is scoped by userId; name matching is case-insensitive.
type InventoryRepository interface {
	Create(ctx context.Context, item *inventory.Item) error
	Update(ctx context.Context, item *inventory.Item) error

	// FindByName looks up a single row by (userID, type, name) with the name
	// compared case-insensitively. Returns (nil, nil) when absent.
	FindByName(ctx context.Context, userID string, itemType inventory.ItemType, name string) (*inventory.Item, error)

	// FindByUser returns all rows for a user across both types
	FindByUser(ctx context.Context, userID string) ([]inventory.Item, error)

	// DeleteByName removes all rows matching the name case-insensitively for
	// the user, regardless of type. Deleting an absent name is a no-op.
	DeleteByName(ctx context.Context, userID, name string) error
}

// MessageRepository defines the interface for chat message persistence.
// Messages are append-only and retrieved in ascending creation order.
type MessageRepository interface {
	Create(ctx context.Context, message *chat.Message) error
	FindByUser(ctx context.Context, userID string) ([]chat.Message, error)
}

// RecipeRepository defines the interface for saved-recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, recipe *recipe.Recipe) error
	FindByUser(ctx context.Context, userID string) ([]recipe.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
