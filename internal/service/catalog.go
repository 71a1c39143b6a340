package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/store"
)

var ErrInvalidItem = errors.New("invalid catalog item")

type CatalogItemParams struct {
	ID             string
	Name           string
	Brand          string
	Category       string
	EffectTags     []string
	KeyIngredients []string
	Note           *string
	Active         *bool
}

type CatalogService interface {
	// Ingest upserts catalog items. Effect tags and ingredients arrive either
	// as arrays or as single comma/pipe separated strings; both are split and
	// trimmed here so the engine only ever sees clean token lists.
	Ingest(ctx context.Context, items []CatalogItemParams) ([]model.CatalogItem, error)
	ListActive(ctx context.Context) ([]model.CatalogItem, error)
}

type catalogService struct {
	catalog store.CatalogStore
	logger  *slog.Logger
}

func NewCatalogService(catalog store.CatalogStore, log *slog.Logger) CatalogService {
	if log == nil {
		log = slog.Default()
	}
	return &catalogService{
		catalog: catalog,
		logger:  log,
	}
}

func (s *catalogService) Ingest(ctx context.Context, items []CatalogItemParams) ([]model.CatalogItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrInvalidItem)
	}

	saved := make([]model.CatalogItem, 0, len(items))
	for _, p := range items {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("%w: id and name are required for every item", ErrInvalidItem)
		}

		active := true
		if p.Active != nil {
			active = *p.Active
		}

		item, err := s.catalog.Upsert(ctx, &model.CatalogItem{
			ID:             p.ID,
			Name:           p.Name,
			Brand:          p.Brand,
			Category:       p.Category,
			EffectTags:     engine.SplitTags(p.EffectTags),
			KeyIngredients: engine.SplitTags(p.KeyIngredients),
			Note:           p.Note,
			Active:         active,
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to upsert catalog item", "error", err, "item_id", p.ID)
			return nil, fmt.Errorf("upserting item %q: %w", p.ID, err)
		}
		saved = append(saved, *item)
	}

	s.logger.InfoContext(ctx, "catalog items ingested", "count", len(saved))
	return saved, nil
}

func (s *catalogService) ListActive(ctx context.Context) ([]model.CatalogItem, error) {
	items, err := s.catalog.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	return items, nil
}
