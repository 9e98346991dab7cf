// Package chat contains the core domain logic for conversation handling:
// the persisted message entity and the context assembly that prepares each
// turn for the model.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Valid reports whether the role is one the system stores and replays
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant || r == RoleSystem
}

// Message is a persisted chat message. Messages are append-only: once
// created they are never mutated, and history is always read in ascending
// creation order.
type Message struct {
	ID        uuid.UUID
	UserID    string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// NewMessage creates a message ready for persistence
func NewMessage(userID string, role Role, content string) (*Message, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	return &Message{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// TextPart is a single textual fragment of a model-ready message
type TextPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// UIMessage is the model-ready message shape the client submits and the
// assembler produces: an id, a role, and one or more text parts.
type UIMessage struct {
	ID    string     `json:"id"`
	Role  string     `json:"role"`
	Parts []TextPart `json:"parts"`
}

// ToUIMessage converts a persisted message into the model-ready shape.
// Only the textual content survives; tool traffic is never replayed.
func (m Message) ToUIMessage() UIMessage {
	return UIMessage{
		ID:   m.ID.String(),
		Role: string(m.Role),
		Parts: []TextPart{
			{Type: "text", Text: m.Content},
		},
	}
}

// Text returns the concatenated text of the message's parts
func (u UIMessage) Text() string {
	var out string
	for _, p := range u.Parts {
		out += p.Text
	}
	return out
}
