package router

import (
	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/handler"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.POST("", h.Create)
	rg.GET("/:user_id", h.GetByID)
	rg.PUT("/:user_id/profile/answers", h.UpdateProfileAnswers)
}
