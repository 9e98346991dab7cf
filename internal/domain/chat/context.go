package chat

import "fmt"

// ContextWindow is the maximum number of persisted messages replayed to the
// model per turn. History older than the window is invisible for that turn.
const ContextWindow = 15

// AssembleContext builds the ordered message list for one model turn.
//
// The persisted history (ascending creation order) is windowed to the last
// ContextWindow entries and converted to the model-ready shape. The last
// windowed element is then dropped: the client persists the new user message
// before submitting the turn, so the history tail duplicates the incoming
// message and concatenating both would replay it twice. The authoritative
// client copy is appended instead. The composed length never exceeds
// ContextWindow.
func AssembleContext(history []Message, incoming []UIMessage) ([]UIMessage, error) {
	if len(incoming) == 0 {
		return nil, ErrNoIncomingMessages
	}

	windowed := history
	if len(windowed) > ContextWindow {
		windowed = windowed[len(windowed)-ContextWindow:]
	}

	assembled := make([]UIMessage, 0, len(windowed)+len(incoming))
	for _, m := range windowed {
		assembled = append(assembled, m.ToUIMessage())
	}
	if len(assembled) > 0 {
		assembled = assembled[:len(assembled)-1]
	}
	assembled = append(assembled, incoming...)

	if err := ValidateMessages(assembled); err != nil {
		return nil, err
	}
	return assembled, nil
}

// ValidateMessages checks the structural validity of an assembled message
// list before it is handed to the model boundary: known roles, at least one
// part per message, no empty text. An invalid structure fails the turn.
func ValidateMessages(messages []UIMessage) error {
	if len(messages) == 0 {
		return ErrNoIncomingMessages
	}
	for i, m := range messages {
		if !Role(m.Role).Valid() {
			return fmt.Errorf("message %d: %w: %q", i, ErrInvalidRole, m.Role)
		}
		if len(m.Parts) == 0 {
			return fmt.Errorf("message %d: %w", i, ErrEmptyParts)
		}
		for j, p := range m.Parts {
			if p.Type != "text" {
				return fmt.Errorf("message %d part %d: %w: %q", i, j, ErrUnknownPartType, p.Type)
			}
			if p.Text == "" {
				return fmt.Errorf("message %d part %d: %w", i, j, ErrEmptyContent)
			}
		}
	}
	return nil
}
