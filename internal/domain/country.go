package domain

// Country holds the per-country coin pricing used by the calculators.
// CoinRate is the local-currency cost of a single coin, kept as a decimal
// string to avoid float drift.
type Country struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Currency string `json:"currency"`
	CoinRate string `json:"coinRate"`
	Flag     string `json:"flag"`
	IsActive bool   `json:"isActive"`
}

type CountryPatch struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	Currency *string `json:"currency"`
	CoinRate *string `json:"coinRate"`
	Flag     *string `json:"flag"`
	IsActive *bool   `json:"isActive"`
}
