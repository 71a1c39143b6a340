package router

import (
	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/handler"
)

func RoutineRouter(rg *gin.RouterGroup, h *handler.RoutineHandler) {
	rg.GET("/:user_id/routines/monthly", h.GetMonthly)
	rg.GET("/:user_id/routines/weekly", h.GetWeekly)
	rg.PATCH("/:user_id/routines/weekly", h.PatchWeekly)
	rg.POST("/:user_id/routines/weekly/rebalance", h.Rebalance)
	rg.POST("/:user_id/routines/weekly/check-ins", h.RecordCheckin)
}
