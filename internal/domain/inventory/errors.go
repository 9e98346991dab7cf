package inventory

import "errors"

var (
	ErrEmptyName        = errors.New("item name must not be empty")
	ErrNameTooLong      = errors.New("item name must be at most 100 characters")
	ErrInvalidType      = errors.New("item type must be ingredient or kitchenware")
	ErrNegativeQuantity = errors.New("item quantity must be positive")
)
