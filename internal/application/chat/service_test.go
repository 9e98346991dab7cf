package chat

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/askahmah/v1/internal/domain/chat"
	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/internal/ports/outbound"
	"github.com/askahmah/v1/pkg/errors"
	"github.com/askahmah/v1/test/testutils"
)

// fakeMessageRepo is an append-only in-memory message store
type fakeMessageRepo struct {
	messages []chat.Message
	failure  error
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *chat.Message) error {
	if f.failure != nil {
		return f.failure
	}
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageRepo) FindByUser(ctx context.Context, userID string) ([]chat.Message, error) {
	if f.failure != nil {
		return nil, f.failure
	}
	out := make([]chat.Message, 0)
	for _, m := range f.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

// scriptedModel returns its responses in order; reaching past the script end
// fails the test via the final error response
type scriptedModel struct {
	responses []scriptedResponse
	requests  []outbound.ChatRequest
}

type scriptedResponse struct {
	resp *outbound.ChatResponse
	err  error
}

func (m *scriptedModel) Chat(ctx context.Context, req outbound.ChatRequest) (*outbound.ChatResponse, error) {
	m.requests = append(m.requests, req)
	if len(m.responses) == 0 {
		return nil, fmt.Errorf("model invoked more times than scripted")
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	return next.resp, next.err
}

// recordingTool records its invocations and returns a fixed result
type recordingTool struct {
	name  string
	calls []map[string]interface{}
}

func (t *recordingTool) Name() string { return t.name }

func (t *recordingTool) Definition() outbound.ToolDefinition {
	return outbound.ToolDefinition{Name: t.name, Parameters: map[string]interface{}{"type": "object"}}
}

func (t *recordingTool) Run(ctx context.Context, userID string, args map[string]interface{}) (map[string]interface{}, error) {
	t.calls = append(t.calls, args)
	return map[string]interface{}{"content": "ok"}, nil
}

type fakeToolProvider struct {
	tools map[string]outbound.Tool
}

func (p *fakeToolProvider) GetTool(name string) (outbound.Tool, error) {
	tool, ok := p.tools[name]
	if !ok {
		return nil, fmt.Errorf("tool %q not found", name)
	}
	return tool, nil
}

func (p *fakeToolProvider) Definitions() []outbound.ToolDefinition {
	defs := make([]outbound.ToolDefinition, 0, len(p.tools))
	for _, t := range p.tools {
		defs = append(defs, t.Definition())
	}
	return defs
}

// ChatServiceTestSuite provides a test suite for the turn orchestrator
type ChatServiceTestSuite struct {
	suite.Suite
	repo    *fakeMessageRepo
	tool    *recordingTool
	factory *testutils.MessageFactory
}

func (suite *ChatServiceTestSuite) SetupTest() {
	suite.repo = &fakeMessageRepo{}
	suite.tool = &recordingTool{name: "getInventory"}
	suite.factory = testutils.NewMessageFactory(1)
}

func (suite *ChatServiceTestSuite) newService(model outbound.ChatModel) inbound.ChatService {
	provider := &fakeToolProvider{tools: map[string]outbound.Tool{suite.tool.name: suite.tool}}
	return NewService(suite.repo, model, provider, zap.NewNop())
}

func (suite *ChatServiceTestSuite) incoming(text string) []chat.UIMessage {
	return []chat.UIMessage{suite.factory.UserTurn(text)}
}

func (suite *ChatServiceTestSuite) TestConverse() {
	ctx := context.Background()

	suite.Run("TextOnlyResponse_EndsTheTurn", func() {
		model := &scriptedModel{responses: []scriptedResponse{
			{resp: &outbound.ChatResponse{Content: "Wah, you got chicken ah!"}},
		}}

		result, err := suite.newService(model).Converse(ctx, "user-1", suite.incoming("what can I cook?"))

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Wah, you got chicken ah!", result.Reply)
		assert.False(suite.T(), result.Failed)
		assert.Empty(suite.T(), result.ToolSteps)
		require.Len(suite.T(), model.requests, 1)
		assert.NotEmpty(suite.T(), model.requests[0].System, "persona prompt rides on every invocation")
		assert.NotEmpty(suite.T(), model.requests[0].Tools)
	})

	suite.Run("ToolCall_ExecutedAndFedBack", func() {
		model := &scriptedModel{responses: []scriptedResponse{
			{resp: &outbound.ChatResponse{ToolCalls: []outbound.ToolCall{{Name: "getInventory", Arguments: map[string]interface{}{}}}}},
			{resp: &outbound.ChatResponse{Content: "You can make chicken rice lah"}},
		}}

		result, err := suite.newService(model).Converse(ctx, "user-1", suite.incoming("dinner ideas"))

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "You can make chicken rice lah", result.Reply)
		require.Len(suite.T(), result.ToolSteps, 1)
		assert.Equal(suite.T(), "getInventory", result.ToolSteps[0].Name)
		assert.Len(suite.T(), suite.tool.calls, 1)

		// Second invocation must carry the tool output as a tool-role message
		require.Len(suite.T(), model.requests, 2)
		second := model.requests[1].Messages
		last := second[len(second)-1]
		assert.Equal(suite.T(), "tool", last.Role)
		assert.Equal(suite.T(), "getInventory", last.Name)
		assert.Contains(suite.T(), last.Content, "ok")
	})

	suite.Run("ToolBudgetExhausted_ForcesTextualConclusion", func() {
		toolResp := scriptedResponse{resp: &outbound.ChatResponse{
			ToolCalls: []outbound.ToolCall{{Name: "getInventory", Arguments: map[string]interface{}{}}},
		}}
		model := &scriptedModel{responses: []scriptedResponse{
			toolResp, toolResp, toolResp, toolResp, toolResp,
			{resp: &outbound.ChatResponse{Content: "Okay okay, here is what Ah Mah thinks"}},
		}}

		result, err := suite.newService(model).Converse(ctx, "user-1", suite.incoming("loop forever"))

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Okay okay, here is what Ah Mah thinks", result.Reply)
		assert.Len(suite.T(), result.ToolSteps, MaxToolSteps)

		// The forced conclusion is invoked without tool definitions
		require.Len(suite.T(), model.requests, MaxToolSteps+1)
		assert.Empty(suite.T(), model.requests[MaxToolSteps].Tools)
	})

	suite.Run("ModelFailure_ReturnsInPersonaReplyWithRetryable", func() {
		model := &scriptedModel{responses: []scriptedResponse{
			{err: errors.NewModelUnavailableError(fmt.Errorf("connection refused"))},
		}}

		result, err := suite.newService(model).Converse(ctx, "user-1", suite.incoming("hello"))

		require.NoError(suite.T(), err, "upstream failures do not surface as errors")
		assert.True(suite.T(), result.Failed)
		assert.True(suite.T(), result.Retryable)
		assert.Equal(suite.T(), failureReply, result.Reply)
	})

	suite.Run("NonRetryableFailure_FlagsAccordingly", func() {
		model := &scriptedModel{responses: []scriptedResponse{
			{err: fmt.Errorf("model exploded")},
		}}

		result, err := suite.newService(model).Converse(ctx, "user-1", suite.incoming("hello"))

		require.NoError(suite.T(), err)
		assert.True(suite.T(), result.Failed)
		assert.False(suite.T(), result.Retryable)
	})

	suite.Run("MissingUserID_IsBadRequest", func() {
		model := &scriptedModel{}

		result, err := suite.newService(model).Converse(ctx, "", suite.incoming("hello"))

		assert.Nil(suite.T(), result)
		assert.Error(suite.T(), err)
	})

	suite.Run("EmptyIncoming_IsValidationError", func() {
		model := &scriptedModel{}

		result, err := suite.newService(model).Converse(ctx, "user-1", nil)

		assert.Nil(suite.T(), result)
		assert.Error(suite.T(), err)
	})

	suite.Run("LongHistory_WindowedBeforeTheModelSeesIt", func() {
		suite.repo.messages = suite.factory.History("user-1", 30)
		model := &scriptedModel{responses: []scriptedResponse{
			{resp: &outbound.ChatResponse{Content: "done"}},
		}}

		_, err := suite.newService(model).Converse(ctx, "user-1", suite.incoming("latest"))

		require.NoError(suite.T(), err)
		require.Len(suite.T(), model.requests, 1)
		assert.Len(suite.T(), model.requests[0].Messages, chat.ContextWindow)
	})
}

func (suite *ChatServiceTestSuite) TestAppendMessageAndHistory() {
	ctx := context.Background()
	model := &scriptedModel{}
	service := suite.newService(model)

	suite.Run("AppendThenList_RoundTrips", func() {
		saved, err := service.AppendMessage(ctx, "user-1", "user", "got any recipes?")
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "user", saved.Role)
		assert.NotEmpty(suite.T(), saved.ID)

		history, err := service.History(ctx, "user-1")
		require.NoError(suite.T(), err)
		require.Len(suite.T(), history, 1)
		assert.Equal(suite.T(), "got any recipes?", history[0].Content)
	})

	suite.Run("InvalidRole_IsRejected", func() {
		saved, err := service.AppendMessage(ctx, "user-1", "narrator", "hi")
		assert.Nil(suite.T(), saved)
		assert.Error(suite.T(), err)
	})

	suite.Run("EmptyContent_IsRejected", func() {
		saved, err := service.AppendMessage(ctx, "user-1", "user", "")
		assert.Nil(suite.T(), saved)
		assert.Error(suite.T(), err)
	})
}

func TestChatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}
