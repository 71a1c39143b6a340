package router

import (
	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/handler"
)

func AnalysisRouter(rg *gin.RouterGroup, h *handler.AnalysisHandler) {
	rg.GET("/:user_id/analysis", h.Get)
}
