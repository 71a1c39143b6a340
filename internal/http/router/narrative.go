package router

import (
	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/handler"
)

func NarrativeRouter(rg *gin.RouterGroup, h *handler.NarrativeHandler) {
	rg.POST("", h.Receive)
}
