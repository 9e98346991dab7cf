// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/askahmah/v1/internal/domain/chat"
	"github.com/askahmah/v1/internal/domain/inventory"
)

// InventoryFactory provides methods to create test inventory items
type InventoryFactory struct {
	faker *gofakeit.Faker
}

// NewInventoryFactory creates a new inventory factory with seeded faker
func NewInventoryFactory(seed int64) *InventoryFactory {
	return &InventoryFactory{
		faker: gofakeit.New(seed),
	}
}

// Ingredient creates a valid ingredient item for the given user
func (f *InventoryFactory) Ingredient(userID string) *inventory.Item {
	item, err := inventory.NewItem(
		userID,
		f.faker.Fruit(),
		inventory.ItemTypeIngredient,
		float64(f.faker.Number(1, 10)),
		"pieces",
	)
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid ingredient: %v", err))
	}
	return item
}

// Kitchenware creates a valid kitchenware item for the given user
func (f *InventoryFactory) Kitchenware(userID string) *inventory.Item {
	item, err := inventory.NewItem(
		userID,
		f.faker.RandomString([]string{"Wok", "Steamer", "Claypot", "Rice cooker", "Chopper"}),
		inventory.ItemTypeKitchenware,
		1,
		"piece",
	)
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid kitchenware: %v", err))
	}
	return item
}

// MessageFactory provides methods to create test chat messages
type MessageFactory struct {
	faker *gofakeit.Faker
}

// NewMessageFactory creates a new message factory with seeded faker
func NewMessageFactory(seed int64) *MessageFactory {
	return &MessageFactory{
		faker: gofakeit.New(seed),
	}
}

// Turn creates a user message followed by an assistant reply, with ascending
// creation times starting at base
func (f *MessageFactory) Turn(userID string, base time.Time) []chat.Message {
	return []chat.Message{
		{
			ID:        uuid.New(),
			UserID:    userID,
			Role:      chat.RoleUser,
			Content:   f.faker.Question(),
			CreatedAt: base,
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Role:      chat.RoleAssistant,
			Content:   f.faker.Sentence(8),
			CreatedAt: base.Add(time.Second),
		},
	}
}

// History creates n alternating user/assistant messages, oldest first
func (f *MessageFactory) History(userID string, n int) []chat.Message {
	base := time.Now().Add(-time.Duration(n) * time.Minute).UTC()
	messages := make([]chat.Message, 0, n)
	for i := 0; i < n; i++ {
		role := chat.RoleUser
		if i%2 == 1 {
			role = chat.RoleAssistant
		}
		messages = append(messages, chat.Message{
			ID:        uuid.New(),
			UserID:    userID,
			Role:      role,
			Content:   f.faker.Sentence(6),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return messages
}

// UserTurn creates a single incoming UI message in the client wire shape
func (f *MessageFactory) UserTurn(text string) chat.UIMessage {
	return chat.UIMessage{
		ID:    uuid.New().String(),
		Role:  string(chat.RoleUser),
		Parts: []chat.TextPart{{Type: "text", Text: text}},
	}
}
