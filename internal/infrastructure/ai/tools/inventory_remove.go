package tools

import (
	"context"
	"fmt"

	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/internal/ports/outbound"
)

const ToolNameRemoveInventoryItem = "removeInventoryItem"

// InventoryRemove deletes items from the caller's inventory by name
type InventoryRemove struct {
	inventory inbound.InventoryService
}

func NewInventoryRemove(inventory inbound.InventoryService) *InventoryRemove {
	return &InventoryRemove{inventory: inventory}
}

func (t *InventoryRemove) Name() string {
	return ToolNameRemoveInventoryItem
}

func (t *InventoryRemove) Definition() outbound.ToolDefinition {
	return outbound.ToolDefinition{
		Name:        ToolNameRemoveInventoryItem,
		Description: "Remove one or more items from the user's kitchen inventory by name. Names that are not in the inventory are ignored.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"itemNames": map[string]interface{}{
					"type":        "array",
					"description": "Names of the items to remove",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
			},
			"required": []string{"itemNames"},
		},
	}
}

func (t *InventoryRemove) Run(ctx context.Context, userID string, args map[string]interface{}) (map[string]interface{}, error) {
	var params struct {
		ItemNames []string `json:"itemNames"`
	}
	if err := decodeArgs(args, &params); err != nil {
		return nil, fmt.Errorf("invalid removeInventoryItem arguments: %w", err)
	}
	if len(params.ItemNames) == 0 {
		return nil, fmt.Errorf("removeInventoryItem requires at least one item name")
	}

	if err := t.inventory.RemoveItems(ctx, userID, params.ItemNames); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"content": fmt.Sprintf("Removed %d item(s) from the inventory: %v", len(params.ItemNames), params.ItemNames),
	}, nil
}
