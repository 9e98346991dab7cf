package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/askahmah/v1/internal/domain/chat"
	"github.com/askahmah/v1/internal/infrastructure/config"
	"github.com/askahmah/v1/internal/ports/inbound"
)

type stubInventoryService struct{}

func (s *stubInventoryService) AddItems(ctx context.Context, userID string, items []inbound.AddItemCommand) error {
	return nil
}

func (s *stubInventoryService) RemoveItems(ctx context.Context, userID string, names []string) error {
	return nil
}

func (s *stubInventoryService) GetInventory(ctx context.Context, userID string) (*inbound.InventoryDTO, error) {
	return &inbound.InventoryDTO{}, nil
}

// stubChatService records whether the request context carried a deadline
type stubChatService struct {
	sawDeadline bool
}

func (s *stubChatService) Converse(ctx context.Context, userID string, incoming []chat.UIMessage) (*inbound.TurnResult, error) {
	_, s.sawDeadline = ctx.Deadline()
	return &inbound.TurnResult{Reply: "ok"}, nil
}

func (s *stubChatService) History(ctx context.Context, userID string) ([]inbound.MessageDTO, error) {
	return nil, nil
}

func (s *stubChatService) AppendMessage(ctx context.Context, userID, role, content string) (*inbound.MessageDTO, error) {
	return &inbound.MessageDTO{}, nil
}

type stubRecipeService struct{}

func (s *stubRecipeService) Save(ctx context.Context, cmd inbound.SaveRecipeCommand) (*inbound.RecipeDTO, error) {
	return &inbound.RecipeDTO{}, nil
}

func (s *stubRecipeService) List(ctx context.Context, userID string) ([]inbound.RecipeDTO, error) {
	return nil, nil
}

func (s *stubRecipeService) Delete(ctx context.Context, recipeID string) error {
	return nil
}

// ServerTestSuite exercises the router's middleware chain end to end
type ServerTestSuite struct {
	suite.Suite
	chat   *stubChatService
	server *Server
}

func (suite *ServerTestSuite) SetupTest() {
	cfg := &config.Config{}
	cfg.App.Version = "test"
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 8080
	cfg.Server.WriteTimeout = 60 * time.Second

	suite.chat = &stubChatService{}
	suite.server = NewServer(cfg, zap.NewNop(), &stubInventoryService{}, suite.chat, &stubRecipeService{})
}

func (suite *ServerTestSuite) TestMiddleware() {
	suite.Run("JSONResponses_AreCompressedWhenAccepted", func() {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		suite.server.Router().ServeHTTP(rec, req)

		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Equal(suite.T(), "gzip", rec.Header().Get("Content-Encoding"))
	})

	suite.Run("Handlers_SeeTheRequestDeadline", func() {
		body := `{"messages":[{"id":"m-1","role":"user","parts":[{"type":"text","text":"hello"}]}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat?userId=user-1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		suite.server.Router().ServeHTTP(rec, req)

		require.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.True(suite.T(), suite.chat.sawDeadline, "chat turns must run under the request timeout")
	})

	suite.Run("SecurityHeaders_ArePresent", func() {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		suite.server.Router().ServeHTTP(rec, req)

		assert.Equal(suite.T(), "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
