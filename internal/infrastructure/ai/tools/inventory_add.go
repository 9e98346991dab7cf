package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/internal/ports/outbound"
)

const ToolNameAddInventoryItem = "addInventoryItem"

// InventoryAdd adds or updates items in the caller's inventory
type InventoryAdd struct {
	inventory inbound.InventoryService
}

func NewInventoryAdd(inventory inbound.InventoryService) *InventoryAdd {
	return &InventoryAdd{inventory: inventory}
}

func (t *InventoryAdd) Name() string {
	return ToolNameAddInventoryItem
}

func (t *InventoryAdd) Definition() outbound.ToolDefinition {
	return outbound.ToolDefinition{
		Name:        ToolNameAddInventoryItem,
		Description: "Add one or more items to the user's kitchen inventory. If an item with the same name and type already exists it is updated in place.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"items": map[string]interface{}{
					"type":        "array",
					"description": "Items to add to the inventory",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"name": map[string]interface{}{
								"type":        "string",
								"description": "Name of the item, e.g. 'Chicken' or 'Wok'",
							},
							"type": map[string]interface{}{
								"type":        "string",
								"enum":        []string{"ingredient", "kitchenware"},
								"description": "Whether the item is an ingredient or kitchenware",
							},
							"quantity": map[string]interface{}{
								"type":        "number",
								"description": "How many the user has; defaults to 1",
							},
							"unit": map[string]interface{}{
								"type":        "string",
								"description": "Measurement unit, e.g. 'grams' or 'pieces'; defaults to 'piece'",
							},
						},
						"required": []string{"name", "type"},
					},
				},
			},
			"required": []string{"items"},
		},
	}
}

func (t *InventoryAdd) Run(ctx context.Context, userID string, args map[string]interface{}) (map[string]interface{}, error) {
	var params struct {
		Items []struct {
			Name     string  `json:"name"`
			Type     string  `json:"type"`
			Quantity float64 `json:"quantity"`
			Unit     string  `json:"unit"`
		} `json:"items"`
	}
	if err := decodeArgs(args, &params); err != nil {
		return nil, fmt.Errorf("invalid addInventoryItem arguments: %w", err)
	}
	if len(params.Items) == 0 {
		return nil, fmt.Errorf("addInventoryItem requires at least one item")
	}

	commands := make([]inbound.AddItemCommand, 0, len(params.Items))
	for _, item := range params.Items {
		commands = append(commands, inbound.AddItemCommand{
			Name:     item.Name,
			Type:     item.Type,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		})
	}

	if err := t.inventory.AddItems(ctx, userID, commands); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name)
	}

	return map[string]interface{}{
		"content": fmt.Sprintf("Added %d item(s) to the inventory: %v", len(names), names),
	}, nil
}

// decodeArgs round-trips a tool argument map through JSON into a typed
// parameter struct
func decodeArgs(args map[string]interface{}, target interface{}) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
