package model

import "time"

type User struct {
	ID        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	BirthYear *int32    `json:"birth_year,omitempty"`
	// TopConcern is the self-declared primary skin concern, a need tag.
	TopConcern *string   `json:"top_concern,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
