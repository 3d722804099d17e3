package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/api/handlers"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/config"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/glpi"
	middlewares "github.com/prefeitura-rio/app-agenda-equipamentos/internal/middleware"
	"github.com/prefeitura-rio/app-agenda-equipamentos/internal/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	if cfg.Tracing.Enabled {
		r.Use(middlewares.RequestTiming())
	}
	r.Use(middlewares.ExtractUserContext())

	cache := glpi.NewCache(time.Duration(cfg.Extracao.CacheTTLMinutes)*time.Minute, cfg.Extracao.CacheMaxSize)
	reservaService := services.NewReservaService(cache, cfg.Extracao.MaxTextoBytes)

	glpiHandler := handlers.NewGlpiHandler(reservaService, cache)
	reservaHandler := handlers.NewReservaHandler(reservaService)
	healthHandler := handlers.NewHealthHandler(glpi.NewExtrator(), cache)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/glpi/campos", glpiHandler.ListarCampos)

		gestao := api.Group("")
		gestao.Use(middlewares.RequireRole(middlewares.PerfisGestao...))
		{
			gestao.POST("/glpi/extrair", glpiHandler.Extrair)
			gestao.POST("/reservas/preparar", reservaHandler.Preparar)
		}

		api.DELETE("/glpi/cache", middlewares.RequireRole(middlewares.RoleDiretora), glpiHandler.LimparCache)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-User-ID, X-User-Role, X-User-Name, X-User-Email")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
