package model

import "time"

type CatalogItem struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Category       string    `json:"category"`
	EffectTags     []string  `json:"effect_tags"`
	KeyIngredients []string  `json:"key_ingredients"`
	Note           *string   `json:"note,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
