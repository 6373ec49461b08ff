package domain

import "time"

// CoinRate maps one currency to the price of a single coin. Keyed by the
// currency code; writes are upserts.
type CoinRate struct {
	ID        int64     `json:"id"`
	Currency  string    `json:"currency"`
	Rate      string    `json:"rate"`
	Symbol    string    `json:"symbol"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommissionSetting holds the platform cut and withdrawal floor used by the
// earnings calculators. Keyed by platform name.
type CommissionSetting struct {
	ID                int64     `json:"id"`
	Platform          string    `json:"platform"`
	CommissionPercent string    `json:"commissionPercent"`
	MinimumWithdraw   string    `json:"minimumWithdraw"`
	Currency          string    `json:"currency"`
	IsActive          bool      `json:"isActive"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CommissionSettingPatch struct {
	CommissionPercent *string `json:"commissionPercent"`
	MinimumWithdraw   *string `json:"minimumWithdraw"`
	Currency          *string `json:"currency"`
	IsActive          *bool   `json:"isActive"`
}
