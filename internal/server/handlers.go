package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"quotewiz/internal/pricing"
	"quotewiz/internal/quote"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleQuote runs the generation pipeline: budget gate, spec
// generation, image rendering.
func (s *Server) handleQuote(c *gin.Context) {
	if os.Getenv(DisableEnvVar) != "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "quote generation is temporarily disabled"})
		return
	}
	if s.generator == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no provider credential configured"})
		return
	}

	var input quote.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if input.ProjectType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type is required"})
		return
	}

	// The estimate covers the text actually sent to the provider.
	promptText := quote.BuildQuotePrompt(input)
	decision := pricing.CheckBudget(promptText)
	if !decision.WithinBudget {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         "request exceeds the cost ceiling, please shorten your answers",
			"estimatedCost": decision.EstimatedCost,
		})
		return
	}

	spec, err := s.generator.GenerateQuoteSpec(c.Request.Context(), input)
	if err != nil {
		s.logger.Error().Err(err).Msg("quote generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "quote generation failed",
			"details": err.Error(),
		})
		return
	}

	spec.ImageURL = s.generator.GenerateImage(c.Request.Context(), spec.ImagePrompt)

	c.JSON(http.StatusOK, quoteResponse{
		Spec:     toSpecDTO(spec),
		ImageURL: spec.ImageURL,
		Usage: usageDTO{
			InputTokens:   pricing.EstimateTokens(promptText),
			EstimatedCost: decision.EstimatedCost,
		},
	})
}

// handleAssist serves per-step hints. The advisory path fails open, so
// the only error this endpoint ever returns is a missing credential.
func (s *Server) handleAssist(c *gin.Context) {
	if s.adviser == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no provider credential configured"})
		return
	}

	var req quote.AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, quote.AssistResponse{})
		return
	}

	c.JSON(http.StatusOK, s.adviser.Suggest(c.Request.Context(), sessionKey(c), req))
}

// sessionKey identifies the client for advisory budgeting. Web clients
// send a stable session header; the client address is the fallback.
func sessionKey(c *gin.Context) string {
	if id := c.GetHeader(SessionIDHeader); id != "" {
		return id
	}
	return c.ClientIP()
}

func (s *Server) handleRecent(c *gin.Context) {
	recent := s.store.LoadRecent()
	out := make([]recentDTO, 0, len(recent))
	for _, r := range recent {
		out = append(out, toRecentDTO(r))
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}
