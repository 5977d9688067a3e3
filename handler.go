package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/fitcalc-go-api/advice"
)

// Handler holds shared dependencies (advisor, clock) for all route handlers.
// Nothing in it is mutated after startup.
type Handler struct {
	advisor *advice.Advisor  // nil when no OpenAI API key is configured
	today   func() time.Time // overridable for tests
}

// newHandler wires the advisor from cfg. A missing or broken OpenAI setup
// only disables the advice endpoint.
func newHandler(cfg config) *Handler {
	h := &Handler{today: time.Now}
	if cfg.OpenAIAPIKey == "" {
		log.Println("[handler] OPENAI_API_KEY not set; advice endpoint disabled")
		return h
	}
	adv, err := advice.NewOpenAI(advice.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
	})
	if err != nil {
		log.Printf("[handler] advice disabled: %v", err)
		return h
	}
	h.advisor = adv
	return h
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Middleware ──────────────────────────────────────────────────────── */

// requestIDMiddleware tags every request with an X-Request-ID (reusing the
// caller's when present) and logs the outcome with it.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)

		start := time.Now()
		c.Next()
		log.Printf("[request] %s %s %s -> %d (%v)",
			id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

/* ─── Routes ──────────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.Use(requestIDMiddleware())

	api := router.Group("/api")
	api.GET("/health", h.health)
	api.GET("/activity-levels", h.getActivityLevels)
	api.POST("/calculate", h.calculate)
	api.POST("/advice", h.getAdvice)
}
