package router

import (
	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/handler"
)

func SignalRouter(rg *gin.RouterGroup, h *handler.SignalHandler) {
	rg.POST("/sessions", h.CreateSession)
}
