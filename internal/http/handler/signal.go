package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/dto"
	"skintel.app/core/internal/service"
)

type SignalHandler struct {
	signals service.SignalIngestService
}

func NewSignalHandler(signals service.SignalIngestService) *SignalHandler {
	return &SignalHandler{signals: signals}
}

func (h *SignalHandler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateSignalSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid signal session request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Photos) == 0 && len(req.Answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one photo or answer is required"})
		return
	}

	params := service.SignalSessionParams{
		UserID: req.UserID,
		Label:  req.Label,
	}
	for _, p := range req.Photos {
		params.Photos = append(params.Photos, service.PhotoInput{
			ShotType:   p.ShotType,
			FocusArea:  p.FocusArea,
			StorageKey: p.StorageKey,
			CapturedAt: p.CapturedAt,
		})
	}
	for _, a := range req.Answers {
		params.Answers = append(params.Answers, service.SessionAnswerInput{
			QuestionKey: a.QuestionKey,
			Answer:      a.Answer,
		})
	}

	result, err := h.signals.CreateSession(ctx, params)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to create signal session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateSignalSessionResponse{
		SessionID: result.Session.ID,
		Label:     result.Session.Label,
		Status:    result.Session.Status,
		Photos:    dto.ToPhotoResponses(result.Photos),
		Answers:   dto.ToAnswerResponses(result.Answers),
	})
}
