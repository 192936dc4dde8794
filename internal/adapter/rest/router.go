package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/simaogato/momoney-backend/internal/adapter/auth"
)

// NewRouter builds the gin engine with every API route registered
func NewRouter(h *Handler, apiToken string, logger logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	r.GET("/healthz", h.Health)

	api := r.Group("/api", AuthMiddleware(apiToken))
	api.GET("/reports", h.GetReport)

	api.GET("/transactions", h.ListTransactions)
	api.POST("/transactions", h.CreateTransaction)
	api.GET("/transactions/:id", h.GetTransaction)
	api.PUT("/transactions/:id", h.UpdateTransaction)
	api.DELETE("/transactions/:id", h.DeleteTransaction)

	api.GET("/budgets", h.ListBudgets)
	api.POST("/budgets", h.CreateBudget)
	api.GET("/budgets/:id", h.GetBudget)
	api.PUT("/budgets/:id", h.UpdateBudget)
	api.DELETE("/budgets/:id", h.DeleteBudget)

	api.GET("/categories", h.ListCategories)
	api.POST("/categories", h.CreateCategory)

	return r
}

// AuthMiddleware rejects requests whose Authorization header does not carry the API token
func AuthMiddleware(apiToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		if !auth.TokenMatches(header, apiToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Next()
	}
}

// RequestLogger logs one entry per request through logrus
func RequestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	logger = logger.WithField("component", "http")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		})
		if len(c.Errors) > 0 {
			entry.WithError(c.Errors.Last()).Error("request failed")
			return
		}
		entry.Debug("request handled")
	}
}
