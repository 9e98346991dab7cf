// Package server provides the HTTP server and route configuration
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/askahmah/v1/internal/infrastructure/config"
	"github.com/askahmah/v1/internal/infrastructure/http/handlers"
	"github.com/askahmah/v1/internal/infrastructure/http/middleware"
	"github.com/askahmah/v1/internal/ports/inbound"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *zap.Logger
	router *chi.Mux
	server *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	inventoryService inbound.InventoryService,
	chatService inbound.ChatService,
	recipeService inbound.RecipeService,
) *Server {
	s := &Server{
		config: cfg,
		logger: logger,
	}

	s.router = s.setupRouter(inventoryService, chatService, recipeService)

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter(
	inventoryService inbound.InventoryService,
	chatService inbound.ChatService,
	recipeService inbound.RecipeService,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}

	// Request timeout; must cover a full model turn
	r.Use(chimiddleware.Timeout(s.config.Server.WriteTimeout))

	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	inventoryHandlers := handlers.NewInventoryHandlers(inventoryService, s.logger)
	messageHandlers := handlers.NewMessageHandlers(chatService, s.logger)
	recipeHandlers := handlers.NewRecipeHandlers(recipeService, s.logger)
	chatHandlers := handlers.NewChatHandlers(chatService, s.logger)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", inventoryHandlers.Get)
			r.Post("/", inventoryHandlers.Add)
			r.Delete("/", inventoryHandlers.Remove)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", messageHandlers.List)
			r.Post("/", messageHandlers.Append)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipeHandlers.List)
			r.Post("/", recipeHandlers.Save)
			r.Delete("/{id}", recipeHandlers.Delete)
		})

		r.Route("/chat", func(r chi.Router) {
			// Model turns are expensive; keep one user from starving the rest
			if s.config.RateLimit.Enabled {
				limiter := middleware.NewRateLimiter(
					s.config.RateLimit.RequestsPerMin,
					s.config.RateLimit.Burst,
				)
				r.Use(limiter.Handler())
			}
			r.Post("/", chatHandlers.Converse)
		})
	})

	return r
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","version":%q,"timestamp":%d}`,
		s.config.App.Version, time.Now().Unix())
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting",
		zap.String("addr", s.server.Addr),
		zap.String("environment", s.config.App.Environment))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.server.Shutdown(ctx)
}

// Router exposes the underlying router, used by tests
func (s *Server) Router() http.Handler {
	return s.router
}
