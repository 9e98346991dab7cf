package chat

import "errors"

var (
	ErrMissingUserID      = errors.New("message userId must not be empty")
	ErrInvalidRole        = errors.New("invalid message role")
	ErrEmptyContent       = errors.New("message content must not be empty")
	ErrEmptyParts         = errors.New("message must have at least one part")
	ErrUnknownPartType    = errors.New("unknown message part type")
	ErrNoIncomingMessages = errors.New("turn must include at least one incoming message")
)
