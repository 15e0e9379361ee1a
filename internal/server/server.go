package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"quotewiz/internal/quote"
	"quotewiz/internal/store"
)

// DisableEnvVar is the kill switch: set to any non-empty value to
// reject generation requests with 503 without touching the provider.
const DisableEnvVar = "QUOTEWIZ_DISABLED"

// QuoteGenerator is the generation surface the server needs.
type QuoteGenerator interface {
	GenerateQuoteSpec(ctx context.Context, input quote.GenerateInput) (quote.QuoteSpec, error)
	GenerateImage(ctx context.Context, prompt string) string
}

// Adviser is the advisory surface the server needs. The session key
// scopes the advisory call budget to one client, so concurrent clients
// do not drain each other's allowance.
type Adviser interface {
	Suggest(ctx context.Context, sessionKey string, req quote.AssistRequest) quote.AssistResponse
}

// Server exposes the wizard backend over HTTP. A nil generator or
// adviser means no provider credential was available at startup; the
// matching endpoints answer 500.
type Server struct {
	generator QuoteGenerator
	adviser   Adviser
	store     *store.Store
	logger    zerolog.Logger
}

// New wires a server.
func New(generator QuoteGenerator, adviser Adviser, st *store.Store, logger zerolog.Logger) *Server {
	return &Server{generator: generator, adviser: adviser, store: st, logger: logger}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(Recovery(s.logger), RequestID(), CORS(), RequestLog(s.logger))

	r.GET("/health", s.handleHealth)

	api := r.Group("/api")
	{
		api.POST("/quote", s.handleQuote)
		api.POST("/assist", s.handleAssist)
		api.GET("/recent", s.handleRecent)
	}

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}
