package dto

import (
	"encoding/json"
	"fmt"

	"skintel.app/core/internal/model"
)

// FlexStrings accepts either a JSON array of strings or a single string, so
// catalog feeds can send "hydration, soothing" and ["hydration","soothing"]
// interchangeably.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*f = []string{single}
		return nil
	}
	return fmt.Errorf("expected string or array of strings")
}

type CatalogItemEntry struct {
	ID             string      `json:"id" binding:"required"`
	Name           string      `json:"name" binding:"required"`
	Brand          string      `json:"brand,omitempty"`
	Category       string      `json:"category,omitempty"`
	EffectTags     FlexStrings `json:"effect_tags,omitempty"`
	KeyIngredients FlexStrings `json:"key_ingredients,omitempty"`
	Note           *string     `json:"note,omitempty"`
	Active         *bool       `json:"active,omitempty"`
}

type IngestCatalogRequest struct {
	Items []CatalogItemEntry `json:"items" binding:"required,min=1,dive"`
}

type CatalogItemResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Category       string   `json:"category"`
	EffectTags     []string `json:"effect_tags"`
	KeyIngredients []string `json:"key_ingredients"`
	Note           *string  `json:"note,omitempty"`
	Active         bool     `json:"active"`
}

type IngestCatalogResponse struct {
	Items []CatalogItemResponse `json:"items"`
}

func ToCatalogItemResponses(items []model.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, CatalogItemResponse{
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
	return out
}
