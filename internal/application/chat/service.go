// Package chat provides the application layer for conversation turns: the
// bounded context assembly and the explicit model/tool loop.
package chat

import (
	"context"
	"encoding/json"

	"github.com/askahmah/v1/internal/domain/chat"
	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/internal/ports/outbound"
	"github.com/askahmah/v1/pkg/errors"
	"go.uber.org/zap"
)

// MaxToolSteps bounds how many model iterations a single turn may spend on
// tool calls before the turn is forced to conclude with a textual answer.
const MaxToolSteps = 5

// Service implements the chat use cases
type Service struct {
	messages outbound.MessageRepository
	model    outbound.ChatModel
	tools    outbound.ToolProvider
	logger   *zap.Logger
}

// NewService creates a new chat service
func NewService(
	messages outbound.MessageRepository,
	model outbound.ChatModel,
	tools outbound.ToolProvider,
	logger *zap.Logger,
) inbound.ChatService {
	return &Service{
		messages: messages,
		model:    model,
		tools:    tools,
		logger:   logger.Named("chat-service"),
	}
}

// Converse runs one conversation turn: load history, assemble the bounded
// context, then iterate model invocations, executing requested tools and
// appending their results, until the model answers with text or the tool
// budget runs out. Messages are not persisted here; the client appends both
// sides of the exchange through AppendMessage, which is what keeps the
// assembler's tail splice correct.
func (s *Service) Converse(ctx context.Context, userID string, incoming []chat.UIMessage) (*inbound.TurnResult, error) {
	if userID == "" {
		return nil, errors.NewBadRequestError("userId is required")
	}

	history, err := s.messages.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load message history", err)
	}

	assembled, err := chat.AssembleContext(history, incoming)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	modelMessages := toModelMessages(assembled)
	result := &inbound.TurnResult{}

	for step := 0; step < MaxToolSteps; step++ {
		resp, err := s.model.Chat(ctx, outbound.ChatRequest{
			System:   SystemPrompt,
			Messages: modelMessages,
			Tools:    s.tools.Definitions(),
		})
		if err != nil {
			return s.failTurn(err, result), nil
		}

		if len(resp.ToolCalls) == 0 {
			result.Reply = resp.Content
			s.logger.Info("Turn completed",
				zap.String("user_id", userID),
				zap.Int("tool_steps", len(result.ToolSteps)),
			)
			return result, nil
		}

		for _, call := range resp.ToolCalls {
			tool, err := s.tools.GetTool(call.Name)
			if err != nil {
				return nil, errors.NewModelError("unknown tool requested", err).WithMetadata("tool", call.Name)
			}

			s.logger.Info("Executing tool call",
				zap.String("user_id", userID),
				zap.String("tool", call.Name),
				zap.Int("step", step+1),
			)

			out, err := tool.Run(ctx, userID, call.Arguments)
			if err != nil {
				return nil, errors.Wrap(err, "tool execution failed")
			}
			result.ToolSteps = append(result.ToolSteps, inbound.ToolStep{
				Name:      call.Name,
				Arguments: call.Arguments,
			})

			payload, err := json.Marshal(out)
			if err != nil {
				return nil, errors.NewInternalError("failed to encode tool result").WithCause(err)
			}
			modelMessages = append(modelMessages, outbound.ModelMessage{
				Role:    "tool",
				Name:    tool.Name(),
				Content: string(payload),
			})
		}
	}

	// Tool budget exhausted; one final invocation without tools forces a
	// textual conclusion.
	resp, err := s.model.Chat(ctx, outbound.ChatRequest{
		System:   SystemPrompt,
		Messages: modelMessages,
	})
	if err != nil {
		return s.failTurn(err, result), nil
	}
	result.Reply = resp.Content
	return result, nil
}

// History returns the user's full persisted message log, oldest first
func (s *Service) History(ctx context.Context, userID string) ([]inbound.MessageDTO, error) {
	if userID == "" {
		return nil, errors.NewBadRequestError("userId is required")
	}
	messages, err := s.messages.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load message history", err)
	}
	out := make([]inbound.MessageDTO, len(messages))
	for i, m := range messages {
		out[i] = messageToDTO(m)
	}
	return out, nil
}

// AppendMessage persists one message to the user's append-only log
func (s *Service) AppendMessage(ctx context.Context, userID, role, content string) (*inbound.MessageDTO, error) {
	message, err := chat.NewMessage(userID, chat.Role(role), content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, errors.NewDatabaseError("create message", err)
	}
	dto := messageToDTO(*message)
	return &dto, nil
}

// failTurn converts an upstream model failure into an in-persona reply with
// a retryable flag instead of a bare server error.
func (s *Service) failTurn(cause error, result *inbound.TurnResult) *inbound.TurnResult {
	retryable := errors.IsRetryable(cause)
	s.logger.Error("Model invocation failed",
		zap.Bool("retryable", retryable),
		zap.Error(cause),
	)
	result.Reply = failureReply
	result.Failed = true
	result.Retryable = retryable
	return result
}

func toModelMessages(messages []chat.UIMessage) []outbound.ModelMessage {
	out := make([]outbound.ModelMessage, len(messages))
	for i, m := range messages {
		out[i] = outbound.ModelMessage{
			Role:    m.Role,
			Content: m.Text(),
		}
	}
	return out
}

func messageToDTO(m chat.Message) inbound.MessageDTO {
	return inbound.MessageDTO{
		ID:        m.ID.String(),
		UserID:    m.UserID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
