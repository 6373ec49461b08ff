package domain

import "time"

// Adsense is a configured ad placement: a code snippet bound to a page
// location (header, sidebar, footer, inside-tool).
type Adsense struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	AdCode    string    `json:"adCode"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AdsensePatch struct {
	Name     *string `json:"name"`
	AdCode   *string `json:"adCode"`
	Location *string `json:"location"`
	IsActive *bool   `json:"isActive"`
}
