package recipe

import "errors"

var (
	ErrMissingUserID     = errors.New("recipe userId must not be empty")
	ErrEmptyName         = errors.New("recipe name must not be empty")
	ErrEmptyInstructions = errors.New("recipe instructions must not be empty")
)
