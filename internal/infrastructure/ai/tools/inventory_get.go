package tools

import (
	"context"
	"fmt"

	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/internal/ports/outbound"
)

const ToolNameGetInventory = "getInventory"

// InventoryGet reads the caller's full inventory, partitioned by item type
type InventoryGet struct {
	inventory inbound.InventoryService
}

func NewInventoryGet(inventory inbound.InventoryService) *InventoryGet {
	return &InventoryGet{inventory: inventory}
}

func (t *InventoryGet) Name() string {
	return ToolNameGetInventory
}

func (t *InventoryGet) Definition() outbound.ToolDefinition {
	return outbound.ToolDefinition{
		Name:        ToolNameGetInventory,
		Description: "Get the user's current kitchen inventory: all ingredients and kitchenware they have on hand. Always call this before suggesting recipes.",
		Parameters: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
			"required":   []string{},
		},
	}
}

func (t *InventoryGet) Run(ctx context.Context, userID string, args map[string]interface{}) (map[string]interface{}, error) {
	dto, err := t.inventory.GetInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"content": fmt.Sprintf("User has %d ingredients and %d kitchenware items",
			len(dto.IngredientInventory), len(dto.KitchenwareInventory)),
		"inventory": map[string]interface{}{
			"ingredientInventory":  dto.IngredientInventory,
			"kitchenwareInventory": dto.KitchenwareInventory,
		},
	}, nil
}
