package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/dto"
	"skintel.app/core/internal/service"
)

type NarrativeHandler struct {
	narratives service.NarrativeService
}

func NewNarrativeHandler(narratives service.NarrativeService) *NarrativeHandler {
	return &NarrativeHandler{narratives: narratives}
}

// Receive is the synchronous path for narrative collaborators; the stored
// envelope is applied asynchronously by the worker.
func (h *NarrativeHandler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ReceiveNarrativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid narrative request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	env, err := h.narratives.Receive(ctx, service.NarrativeEnvelopeParams{
		UserID:    req.UserID,
		PeriodKey: req.PeriodKey,
		Payload:   req.Payload,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrInvalidEnvelope):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.ErrorContext(ctx, "failed to receive narrative envelope", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to receive envelope"})
		}
		return
	}

	c.JSON(http.StatusAccepted, dto.ToNarrativeEnvelopeResponse(env))
}
