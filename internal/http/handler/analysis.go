package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/dto"
	"skintel.app/core/internal/service"
)

type AnalysisHandler struct {
	analysis service.AnalysisService
}

func NewAnalysisHandler(analysis service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

func (h *AnalysisHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	result, err := h.analysis.Analyze(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrMissingSession):
			c.JSON(http.StatusNotFound, gin.H{"error": "no capture session for user"})
		default:
			slog.ErrorContext(ctx, "analysis failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisResponse(result))
}
