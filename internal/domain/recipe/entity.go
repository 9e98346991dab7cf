// Package recipe contains the domain model for recipes a user saved from
// the conversation.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a saved recipe owned by one user. Instructions hold the free
// text as extracted from the assistant's reply, possibly including a
// delimited recipe block. MessageID correlates the recipe back to the chat
// message it was extracted from, when known.
type Recipe struct {
	ID           uuid.UUID
	UserID       string
	Name         string
	Instructions string
	Tags         []string
	MessageID    string
	CreatedAt    time.Time
}

// NewRecipe creates a recipe ready for persistence
func NewRecipe(userID, name, instructions string, tags []string, messageID string) (*Recipe, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if instructions == "" {
		return nil, ErrEmptyInstructions
	}
	return &Recipe{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Instructions: instructions,
		Tags:         tags,
		MessageID:    messageID,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
