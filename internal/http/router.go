package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas del totem.
// metricsHandler puede ser nil.
func NewRouter(
	logger *zap.Logger,
	stylistH *StylistHandler,
	sessionH *SessionHandler,
	catalogH *CatalogHandler,
	metricsHandler http.Handler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	api := r.Group("")
	api.Use(jsonContentTypeMiddleware())

	api.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.POST("/session", sessionH.CreateSession)
	api.GET("/profile", sessionH.GetProfile)
	api.POST("/profile/traits", sessionH.MergeTraits)

	api.GET("/discover", stylistH.Discover)
	swipe := api.Group("/swipe")
	swipe.POST("/like", stylistH.Like)
	swipe.POST("/dislike", stylistH.Dislike)
	api.GET("/recommend", stylistH.Recommend)
	api.GET("/outfit", stylistH.ComposeOutfit)

	cat := api.Group("/catalog")
	cat.GET("/search", catalogH.Search)
	cat.GET("/categories", catalogH.Categories)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
