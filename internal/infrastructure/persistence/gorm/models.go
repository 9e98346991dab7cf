// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItemModel represents the GORM model for inventory items.
// Rows are unique per (user_id, type, name) with the name stored in its
// canonical form; case-insensitive matching happens in queries.
type InventoryItemModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID      string    `gorm:"type:varchar(255);not null;index:idx_inventory_user"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Type        string    `gorm:"type:varchar(20);not null;index:idx_inventory_user"`
	Quantity    float64   `gorm:"not null;default:1"`
	Unit        string    `gorm:"type:varchar(32);not null;default:'piece'"`
	DateAdded   time.Time
	LastUpdated time.Time
}

// TableName overrides the table name for InventoryItemModel
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// MessageModel represents the GORM model for chat messages
type MessageModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    string    `gorm:"type:varchar(255);not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides the table name for MessageModel
func (MessageModel) TableName() string {
	return "messages"
}

// RecipeModel represents the GORM model for saved recipes
type RecipeModel struct {
	ID           uuid.UUID   `gorm:"type:char(36);primaryKey"`
	UserID       string      `gorm:"type:varchar(255);not null;index"`
	Name         string      `gorm:"type:varchar(200);not null"`
	Instructions string      `gorm:"type:text;not null"`
	Tags         StringSlice `gorm:"type:json"`
	MessageID    string      `gorm:"type:varchar(64)"`
	CreatedAt    time.Time
}

// TableName overrides the table name for RecipeModel
func (RecipeModel) TableName() string {
	return "recipes"
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for InventoryItemModel
func (m *InventoryItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MessageModel
func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (m *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
