package router

import (
	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/handler"
	"skintel.app/core/internal/service"
)

type RouterConfig struct {
	AdminAPIKey string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		UserRouter(users, handler.NewUserHandler(services.Users()))
		AnalysisRouter(users, handler.NewAnalysisHandler(services.Analysis()))
		RoutineRouter(users, handler.NewRoutineHandler(services.Routines()))

		SignalRouter(v1.Group("/signals"), handler.NewSignalHandler(services.Signals()))
		CatalogRouter(v1.Group("/catalog"), handler.NewCatalogHandler(services.Catalog()), cfg.AdminAPIKey)
		NarrativeRouter(v1.Group("/narratives"), handler.NewNarrativeHandler(services.Narratives()))
	}
}
