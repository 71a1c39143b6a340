package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"skintel.app/core/internal/http/dto"
	"skintel.app/core/internal/service"
)

type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.IngestCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid catalog request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := make([]service.CatalogItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		params = append(params, service.CatalogItemParams{
			ID:             item.ID,
			Name:           item.Name,
			Brand:          item.Brand,
			Category:       item.Category,
			EffectTags:     item.EffectTags,
			KeyIngredients: item.KeyIngredients,
			Note:           item.Note,
			Active:         item.Active,
		})
	}

	saved, err := h.catalog.Ingest(ctx, params)
	if err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(ctx, "failed to ingest catalog items", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to ingest catalog items"})
		return
	}

	c.JSON(http.StatusOK, dto.IngestCatalogResponse{
		Items: dto.ToCatalogItemResponses(saved),
	})
}

func (h *CatalogHandler) ListActive(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.catalog.ListActive(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list catalog", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list catalog"})
		return
	}

	c.JSON(http.StatusOK, dto.IngestCatalogResponse{
		Items: dto.ToCatalogItemResponses(items),
	})
}
