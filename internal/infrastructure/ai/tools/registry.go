// Package tools provides the inventory tools the model may call mid-turn.
// Each tool is a thin binding into the inventory service; the registry maps
// tool names to implementations.
package tools

import (
	"fmt"

	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/internal/ports/outbound"
)

// Registry maps tool names to implementations
type Registry map[string]outbound.Tool

// NewRegistry creates the tool registry bound to the inventory service
func NewRegistry(inventory inbound.InventoryService) outbound.ToolProvider {
	registry := Registry{}
	for _, tool := range []outbound.Tool{
		NewInventoryGet(inventory),
		NewInventoryAdd(inventory),
		NewInventoryRemove(inventory),
	} {
		registry[tool.Name()] = tool
	}
	return registry
}

// GetTool retrieves a tool by name from the registry
func (r Registry) GetTool(name string) (outbound.Tool, error) {
	tool, exists := r[name]
	if !exists {
		return nil, fmt.Errorf("tool %q not found in registry", name)
	}
	return tool, nil
}

// Definitions returns the definitions of all registered tools in a stable
// order for the model request
func (r Registry) Definitions() []outbound.ToolDefinition {
	names := []string{ToolNameGetInventory, ToolNameAddInventoryItem, ToolNameRemoveInventoryItem}
	defs := make([]outbound.ToolDefinition, 0, len(names))
	for _, name := range names {
		if tool, ok := r[name]; ok {
			defs = append(defs, tool.Definition())
		}
	}
	return defs
}
