package domain

// Gift is a virtual item sendable to a creator. DiamondValue is what the
// creator receives when the gift is converted.
type Gift struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CoinCost     int    `json:"coinCost"`
	DiamondValue int    `json:"diamondValue"`
	Category     string `json:"category"`
	Rarity       string `json:"rarity"`
	IsActive     bool   `json:"isActive"`
}

type GiftPatch struct {
	Name         *string `json:"name"`
	CoinCost     *int    `json:"coinCost"`
	DiamondValue *int    `json:"diamondValue"`
	Category     *string `json:"category"`
	Rarity       *string `json:"rarity"`
	IsActive     *bool   `json:"isActive"`
}
