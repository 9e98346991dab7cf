// Package inventory contains the core domain logic for the kitchen inventory.
// Names are kept in a canonical form so that the same ingredient mentioned in
// different casings always resolves to a single row per user and type.
package inventory

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ItemType classifies an inventory item
type ItemType string

const (
	ItemTypeIngredient  ItemType = "ingredient"
	ItemTypeKitchenware ItemType = "kitchenware"
)

// Valid reports whether the type is a known item type
func (t ItemType) Valid() bool {
	return t == ItemTypeIngredient || t == ItemTypeKitchenware
}

// Defaults applied when the model or user leaves quantity or unit unspecified
const (
	DefaultQuantity = 1
	DefaultUnit     = "piece"
)

// Item represents a single inventory row owned by one user.
// Uniqueness is (UserID, Type, Name) with Name compared case-insensitively.
type Item struct {
	ID          uuid.UUID
	UserID      string
	Name        string
	Type        ItemType
	Quantity    float64
	Unit        string
	DateAdded   time.Time
	LastUpdated time.Time
}

// NewItem creates a canonical inventory item, applying name normalization and
// quantity/unit defaults. The caller validates the raw input shape first.
func NewItem(userID, name string, itemType ItemType, quantity float64, unit string) (*Item, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > 100 {
		return nil, ErrNameTooLong
	}
	if !itemType.Valid() {
		return nil, ErrInvalidType
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	if quantity == 0 {
		quantity = DefaultQuantity
	}
	if unit == "" {
		unit = DefaultUnit
	}

	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        CanonicalName(name),
		Type:        itemType,
		Quantity:    quantity,
		Unit:        unit,
		DateAdded:   now,
		LastUpdated: now,
	}, nil
}

// MergeFrom overwrites the mutable fields of an existing row with the values
// of a newly reconciled item. Last write wins; quantities are not accumulated.
// DateAdded is preserved, LastUpdated moves forward.
func (i *Item) MergeFrom(incoming *Item) {
	i.Name = incoming.Name
	i.Quantity = incoming.Quantity
	i.Unit = incoming.Unit
	i.LastUpdated = incoming.LastUpdated
}

// SameName reports whether the item's name matches the given name
// case-insensitively.
func (i *Item) SameName(name string) bool {
	return strings.EqualFold(i.Name, name)
}

// CanonicalName normalizes a raw item name: first rune upper-cased, the rest
// lower-cased. This is the full rule; no trimming or locale-aware casing.
// Applying it twice yields the same result.
func CanonicalName(name string) string {
	if name == "" {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}
