package domain

import "time"

// VisitorLog is an append-only page-view record. It is never updated or
// deleted; analytics are derived by scanning the full list.
type VisitorLog struct {
	ID        int64     `json:"id"`
	IPAddress string    `json:"ipAddress"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	UserAgent string    `json:"userAgent"`
	Referer   string    `json:"referer"`
	Page      string    `json:"page"`
	VisitedAt time.Time `json:"visitedAt"`
}

// CountryStat is a visitor tally for one country, used by the dashboard.
type CountryStat struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// PageStat is a visitor tally for one page path.
type PageStat struct {
	Page  string `json:"page"`
	Count int    `json:"count"`
}

// DailyCount is the visitor total for one UTC calendar day (YYYY-MM-DD).
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
