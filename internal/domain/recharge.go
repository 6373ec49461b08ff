package domain

// RechargePackage is a purchasable coin bundle priced for one country.
// CountryID is a soft reference; an orphaned package is tolerated.
type RechargePackage struct {
	ID        int64  `json:"id"`
	CountryID int64  `json:"countryId"`
	Coins     int    `json:"coins"`
	Price     string `json:"price"`
	Currency  string `json:"currency"`
	IsActive  bool   `json:"isActive"`
}

type RechargePackagePatch struct {
	CountryID *int64  `json:"countryId"`
	Coins     *int    `json:"coins"`
	Price     *string `json:"price"`
	Currency  *string `json:"currency"`
	IsActive  *bool   `json:"isActive"`
}
