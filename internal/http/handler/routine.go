package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/http/dto"
	"skintel.app/core/internal/service"
)

type RoutineHandler struct {
	routines service.RoutineService
	now      func() time.Time
}

func NewRoutineHandler(routines service.RoutineService) *RoutineHandler {
	return &RoutineHandler{
		routines: routines,
		now:      time.Now,
	}
}

func (h *RoutineHandler) GetMonthly(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	routine, err := h.routines.MonthlyFor(ctx, userID, h.now())
	if err != nil {
		h.writeRoutineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyRoutineResponse(routine))
}

func (h *RoutineHandler) GetWeekly(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	result, err := h.routines.WeeklyFor(ctx, userID, h.now())
	if err != nil {
		h.writeRoutineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWeeklyRoutineResponse(result))
}

func (h *RoutineHandler) PatchWeekly(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req dto.PatchWeeklyRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid weekly patch", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Intensity != nil {
		switch engine.Intensity(*req.Intensity) {
		case engine.IntensityGentle, engine.IntensityStandard, engine.IntensityFocus:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown intensity"})
			return
		}
	}

	result, err := h.routines.UpdateWeekly(ctx, userID, service.WeeklyPatchParams{
		RecommendedDays: req.RecommendedDays,
		Intensity:       req.Intensity,
		OptionalSteps:   req.OptionalSteps,
	}, h.now())
	if err != nil {
		h.writeRoutineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWeeklyRoutineResponse(result))
}

func (h *RoutineHandler) Rebalance(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	result, err := h.routines.Rebalance(ctx, userID, h.now())
	if err != nil {
		h.writeRoutineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWeeklyRoutineResponse(result))
}

func (h *RoutineHandler) RecordCheckin(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	// Body is optional; an empty POST checks in for now.
	var req dto.RecordCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.WarnContext(ctx, "invalid check-in request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	at := h.now()
	if req.CheckedAt != nil {
		at = *req.CheckedAt
	}

	result, err := h.routines.RecordCheckin(ctx, userID, at)
	if err != nil {
		h.writeRoutineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWeeklyRoutineResponse(result))
}

func (h *RoutineHandler) writeRoutineError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrRoutineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "routine not found"})
	default:
		slog.ErrorContext(ctx, "routine request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "routine request failed"})
	}
}
