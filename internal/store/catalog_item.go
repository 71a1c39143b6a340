package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"skintel.app/core/core/db/sqlc"
	"skintel.app/core/internal/model"
)

type catalogStore struct {
	queries *sqlc.Queries
}

func newCatalogStore(queries *sqlc.Queries) CatalogStore {
	return &catalogStore{queries: queries}
}

func (s *catalogStore) Upsert(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	row, err := s.queries.UpsertCatalogItem(ctx, sqlc.UpsertCatalogItemParams{
		ID:             item.ID,
		Name:           item.Name,
		Brand:          item.Brand,
		Category:       item.Category,
		EffectTags:     item.EffectTags,
		KeyIngredients: item.KeyIngredients,
		Note:           item.Note,
		Active:         item.Active,
	})
	if err != nil {
		return nil, err
	}
	return toCatalogItemModel(row), nil
}

func (s *catalogStore) GetByID(ctx context.Context, id string) (*model.CatalogItem, error) {
	row, err := s.queries.GetCatalogItem(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCatalogItemModel(row), nil
}

func (s *catalogStore) ListActive(ctx context.Context) ([]model.CatalogItem, error) {
	rows, err := s.queries.ListActiveCatalogItems(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.CatalogItem, 0, len(rows))
	for _, row := range rows {
		result = append(result, *toCatalogItemModel(row))
	}
	return result, nil
}

func toCatalogItemModel(row sqlc.CatalogItem) *model.CatalogItem {
	return &model.CatalogItem{
		ID:             row.ID,
		Name:           row.Name,
		Brand:          row.Brand,
		Category:       row.Category,
		EffectTags:     row.EffectTags,
		KeyIngredients: row.KeyIngredients,
		Note:           row.Note,
		Active:         row.Active,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
