package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler, apiAccessKey string) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-API-Key, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Routes
	setupRoutes(r, handler, apiAccessKey)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler, apiAccessKey string) {
	// Analysis endpoints
	r.POST("/predict", handler.Predict)
	r.POST("/analyze-article", handler.AnalyzeArticle)
	r.POST("/translate-text", handler.TranslateText)

	// Read endpoints
	r.GET("/history", handler.GetHistory)
	r.GET("/trending-news", handler.GetTrendingNews)
	r.GET("/rss-news", handler.GetRSSNews)
	r.GET("/sentiment-distribution", handler.GetSentimentDistribution)

	// Health endpoint
	r.GET("/health", handler.HealthCheck)

	// Destructive endpoints (conditionally behind authentication)
	if apiAccessKey != "" {
		admin := r.Group("/")
		admin.Use(authMiddleware(apiAccessKey))
		{
			admin.POST("/clear-history", handler.ClearHistory)
			admin.POST("/clear-live-data", handler.ClearLiveData)
		}
		log.Printf("Destructive endpoints enabled with authentication")
	} else {
		r.POST("/clear-history", handler.ClearHistory)
		r.POST("/clear-live-data", handler.ClearLiveData)
		log.Printf("Destructive endpoints enabled without authentication (API_ACCESS_KEY not set)")
	}

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		endpoints := map[string]string{
			"predict":                "/predict (POST)",
			"analyze":                "/analyze-article (POST)",
			"history":                "/history",
			"trending":               "/trending-news?category=<name>&country=<code>",
			"rss":                    "/rss-news?category=<name>&country=<code>",
			"sentiment_distribution": "/sentiment-distribution?days=<span>",
			"translate":              "/translate-text (POST)",
			"health":                 "/health",
		}

		if apiAccessKey != "" {
			endpoints["clear_history"] = "/clear-history (POST, requires X-API-Key header)"
			endpoints["clear_live_data"] = "/clear-live-data (POST, requires X-API-Key header)"
		} else {
			endpoints["clear_history"] = "/clear-history (POST)"
			endpoints["clear_live_data"] = "/clear-live-data (POST)"
		}

		c.JSON(200, gin.H{
			"service":     "NewsPulse",
			"version":     "1.0.0",
			"description": "News content analytics with sentiment time-series aggregation",
			"endpoints":   endpoints,
			"api_status": map[string]interface{}{
				"auth_required": apiAccessKey != "",
				"header":        "X-API-Key",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

// authMiddleware creates authentication middleware for destructive endpoints
func authMiddleware(apiAccessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get API key from X-API-Key header
		providedKey := c.GetHeader("X-API-Key")

		// Also check Authorization header with Bearer prefix
		if providedKey == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				providedKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// Check if API key is provided and matches
		if providedKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "API key required",
				"message": "Provide API key in X-API-Key header or Authorization: Bearer <key>",
			})
			c.Abort()
			return
		}

		if providedKey != apiAccessKey {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid API key",
				"message": "The provided API key is not valid",
			})
			c.Abort()
			return
		}

		// Continue to next middleware/handler
		c.Next()
	}
}
