package router

import (
	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/handler"
	"skintel.app/core/internal/http/middleware"
)

func CatalogRouter(rg *gin.RouterGroup, h *handler.CatalogHandler, adminAPIKey string) {
	rg.POST("/items", middleware.AdminKey(adminAPIKey), h.Ingest)
	rg.GET("/items", h.ListActive)
}
