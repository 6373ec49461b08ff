package domain

import "time"

// Tool is one calculator page in the static catalog.
type Tool struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToolPatch enumerates the mutable fields of a Tool. Nil means "leave as is".
type ToolPatch struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
}
