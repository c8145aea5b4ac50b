package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"cardwall/internal/adapter/http/handler"
	"cardwall/internal/adapter/http/middleware"
	"cardwall/internal/shared"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	CardHandler *handler.CardHandler
}

func SetupRouter(handlers HandlersConfig, metrics *shared.AppMetrics, limiter *shared.RateLimiter, logger zerolog.Logger) *gin.Engine {
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(otelgin.Middleware("cardwall"))
	router.Use(shared.RequestLogger(logger))
	router.Use(shared.MetricsMiddleware(metrics))

	if limiter != nil {
		router.Use(limiter.Middleware())
	}

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	if handlers.AuthHandler != nil {
		setupAuthRoutes(router, handlers.AuthHandler)
	}

	if handlers.CardHandler != nil {
		setupCardRoutes(router, handlers.CardHandler)
	}

	return router
}

func setupAuthRoutes(router *gin.Engine, authHandler *handler.AuthHandler) {
	auth := router.Group("/auth/local")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("", authHandler.Login)
	}
}

func setupCardRoutes(router *gin.Engine, cardHandler *handler.CardHandler) {
	cards := router.Group("/cards")
	cards.Use(middleware.BearerToken())
	{
		cards.GET("", cardHandler.List)
		cards.GET("/:id", cardHandler.Get)
		cards.POST("", cardHandler.Create)
		cards.PUT("/:id", cardHandler.Update)
		cards.DELETE("/:id", cardHandler.Delete)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
