package outbound

import "context"

// ChatModel is the model-invocation boundary. It accepts a system prompt,
// the assembled conversation, and the tool definitions the model may call,
// and returns either final text or a set of requested tool calls.
type ChatModel interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// ChatRequest carries one model invocation
type ChatRequest struct {
	System   string
	Messages []ModelMessage
	Tools    []ToolDefinition
}

// ModelMessage is a message in the model's wire shape. Name carries the tool
// name on tool-role messages.
type ModelMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// ToolDefinition describes a callable tool in JSON-schema form
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// ToolCall is a tool invocation requested by the model
type ToolCall struct {
	Name      string
	Arguments map[string]interface{}
}

// ChatResponse is the model's reply for a single invocation: final text,
// tool calls, or both
type ChatResponse struct {
	Content   string
	ToolCalls []ToolCall
}

// Tool is a named callable the model may invoke mid-turn. Run receives the
// owning user's id so every tool effect stays scoped to that user.
type Tool interface {
	Name() string
	Definition() ToolDefinition
	Run(ctx context.Context, userID string, args map[string]interface{}) (map[string]interface{}, error)
}

// ToolProvider resolves tools by name and exposes their definitions for the
// model request
type ToolProvider interface {
	GetTool(name string) (Tool, error)
	Definitions() []ToolDefinition
}
