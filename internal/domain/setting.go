package domain

import "time"

// SiteSetting is a singleton-per-key configuration row. Writes are upserts
// keyed on Key.
type SiteSetting struct {
	ID          int64     `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
