package apiHttp

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vibe-gaming/hbnb/docs"
	"github.com/vibe-gaming/hbnb/pkg/limiter"
	"github.com/vibe-gaming/hbnb/pkg/logger"
	"github.com/vibe-gaming/hbnb/pkg/validator"

	internalV1 "github.com/vibe-gaming/hbnb/internal/api/http/internal/v1"
	"github.com/vibe-gaming/hbnb/internal/config"
	"github.com/vibe-gaming/hbnb/internal/metrics"
	"github.com/vibe-gaming/hbnb/internal/service"
	"github.com/vibe-gaming/hbnb/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Services
	provider *storage.Provider
	metrics  *metrics.Metrics
}

// NewHandlers wires the API. metrics may be nil when disabled.
func NewHandlers(
	services *service.Services,
	provider *storage.Provider,
	metrics *metrics.Metrics,
) *Handler {
	return &Handler{
		services: services,
		provider: provider,
		metrics:  metrics,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		ginzap.RecoveryWithZap(logger.Logger(), true),
	)

	if h.metrics != nil {
		router.Use(h.metrics.Middleware())
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	router.Use(
		corsMiddleware(cfg.HttpServer.CORSOrigins),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
	)

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, internalV1.ErrorStruct{Error: internalV1.NotFoundMessage})
	})

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.provider)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}
