package storage

import (
	"time"

	"tokrecharge_api/internal/domain"
)

// seed loads the fixture catalog the site ships with. Fixed ids below 200;
// generated ids continue from there.
func (m *Memory) seed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := nowUTC()

	for _, t := range []domain.Tool{
		{ID: 1, Name: "Coin Calculator", Slug: "coin-calculator", Description: "Convert coins to currency", Icon: "calculator", Color: "from-tiktok-pink to-tiktok-cyan", Category: "calculator", IsActive: true, CreatedAt: now},
		{ID: 2, Name: "Gift Value Estimator", Slug: "gift-value", Description: "Check gift costs", Icon: "gift", Color: "from-purple-500 to-tiktok-cyan", Category: "calculator", IsActive: true, CreatedAt: now},
		{ID: 3, Name: "Recharge Prices", Slug: "recharge-prices", Description: "Compare country rates", Icon: "credit-card", Color: "from-tiktok-cyan to-blue-500", Category: "comparison", IsActive: true, CreatedAt: now},
		{ID: 4, Name: "Earnings Estimator", Slug: "earnings-estimator", Description: "Calculate creator income", Icon: "chart-line", Color: "from-green-500 to-tiktok-cyan", Category: "calculator", IsActive: true, CreatedAt: now},
		{ID: 5, Name: "Coins to Diamonds", Slug: "coin-to-diamond", Description: "Convert currencies", Icon: "gem", Color: "from-tiktok-pink to-purple-500", Category: "converter", IsActive: true, CreatedAt: now},
		{ID: 6, Name: "Withdraw Calculator", Slug: "withdraw-value", Description: "Net withdrawal amount", Icon: "money-bill-wave", Color: "from-orange-500 to-tiktok-pink", Category: "calculator", IsActive: true, CreatedAt: now},
	} {
		m.tools[t.ID] = t
	}

	for _, c := range []domain.Country{
		{ID: 1, Name: "United States", Code: "US", Currency: "USD", CoinRate: "0.015000", Flag: "🇺🇸", IsActive: true},
		{ID: 2, Name: "India", Code: "IN", Currency: "INR", CoinRate: "1.250000", Flag: "🇮🇳", IsActive: true},
		{ID: 3, Name: "Pakistan", Code: "PK", Currency: "PKR", CoinRate: "4.200000", Flag: "🇵🇰", IsActive: true},
		{ID: 4, Name: "United Kingdom", Code: "GB", Currency: "GBP", CoinRate: "0.012000", Flag: "🇬🇧", IsActive: true},
		{ID: 5, Name: "Canada", Code: "CA", Currency: "CAD", CoinRate: "0.020000", Flag: "🇨🇦", IsActive: true},
	} {
		m.countries[c.ID] = c
	}

	for _, g := range []domain.Gift{
		{ID: 1, Name: "Rose", CoinCost: 1, DiamondValue: 1, Category: "Basic", Rarity: "Common", IsActive: true},
		{ID: 2, Name: "TikTok", CoinCost: 5, DiamondValue: 5, Category: "Basic", Rarity: "Common", IsActive: true},
		{ID: 3, Name: "Sunglasses", CoinCost: 10, DiamondValue: 10, Category: "Basic", Rarity: "Common", IsActive: true},
		{ID: 4, Name: "Heart Me", CoinCost: 15, DiamondValue: 15, Category: "Basic", Rarity: "Common", IsActive: true},
		{ID: 5, Name: "Perfume", CoinCost: 20, DiamondValue: 20, Category: "Basic", Rarity: "Common", IsActive: true},
		{ID: 6, Name: "Paper Crane", CoinCost: 99, DiamondValue: 99, Category: "Premium", Rarity: "Rare", IsActive: true},
		{ID: 7, Name: "Galaxy", CoinCost: 1000, DiamondValue: 1000, Category: "Premium", Rarity: "Epic", IsActive: true},
		{ID: 8, Name: "Universe", CoinCost: 34999, DiamondValue: 34999, Category: "Premium", Rarity: "Legendary", IsActive: true},
	} {
		m.gifts[g.ID] = g
	}

	m.seedBlogPosts(now)

	for _, p := range []domain.RechargePackage{
		{ID: 1, CountryID: 1, Coins: 70, Price: "1.09", Currency: "USD", IsActive: true},
		{ID: 2, CountryID: 1, Coins: 350, Price: "5.49", Currency: "USD", IsActive: true},
		{ID: 3, CountryID: 1, Coins: 700, Price: "10.99", Currency: "USD", IsActive: true},
		{ID: 4, CountryID: 2, Coins: 70, Price: "89.00", Currency: "INR", IsActive: true},
		{ID: 5, CountryID: 2, Coins: 350, Price: "449.00", Currency: "INR", IsActive: true},
		{ID: 6, CountryID: 2, Coins: 700, Price: "899.00", Currency: "INR", IsActive: true},
		{ID: 7, CountryID: 3, Coins: 70, Price: "309.00", Currency: "PKR", IsActive: true},
		{ID: 8, CountryID: 3, Coins: 350, Price: "1549.00", Currency: "PKR", IsActive: true},
		{ID: 9, CountryID: 3, Coins: 700, Price: "3099.00", Currency: "PKR", IsActive: true},
	} {
		m.packages[p.ID] = p
	}

	// Default super_admin; password "secret".
	m.adminUsers[1] = domain.AdminUser{
		ID:           1,
		Username:     "admin",
		Email:        "admin@tokrecharge.com",
		PasswordHash: "$2b$10$IDDB9.Zv3SgXfm97e6C8yOmHNzIOcbnHd0eq1DW8D84Cwf3X4wL9q",
		Role:         domain.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for _, s := range []struct{ key, value, typ, desc string }{
		{"title", "TokRecharge.com - TikTok Coin Calculator & Tools", "text", "Website title"},
		{"metaTitle", "TikTok Coin Calculator & Recharge Tools | TokRecharge.com", "text", "Meta title for SEO"},
		{"metaDescription", "Calculate TikTok coin values, compare recharge prices, estimate creator earnings, and explore gift values with our comprehensive TikTok monetization toolkit.", "text", "Meta description for SEO"},
		{"logo", "/assets/logo.svg", "image", "Website logo"},
		{"favicon", "/assets/favicon.ico", "image", "Website favicon"},
		{"googleAnalytics", "", "text", "Google Analytics tracking code"},
		{"googleSearchConsole", "", "text", "Google Search Console verification"},
		{"facebookPixel", "", "text", "Facebook Pixel code"},
		{"verificationMeta", "", "text", "Verification meta tags"},
	} {
		m.settings[s.key] = domain.SiteSetting{
			ID:          m.allocID(),
			Key:         s.key,
			Value:       s.value,
			Type:        s.typ,
			Description: s.desc,
			UpdatedAt:   now,
		}
	}

	for _, r := range []domain.CoinRate{
		{ID: 1, Currency: "USD", Rate: "0.015000", Symbol: "$", IsActive: true, UpdatedAt: now},
		{ID: 2, Currency: "EUR", Rate: "0.014000", Symbol: "€", IsActive: true, UpdatedAt: now},
		{ID: 3, Currency: "INR", Rate: "1.250000", Symbol: "₹", IsActive: true, UpdatedAt: now},
		{ID: 4, Currency: "PKR", Rate: "4.200000", Symbol: "Rs", IsActive: true, UpdatedAt: now},
		{ID: 5, Currency: "GBP", Rate: "0.012000", Symbol: "£", IsActive: true, UpdatedAt: now},
	} {
		m.coinRates[r.Currency] = r
	}

	m.commissions["tiktok"] = domain.CommissionSetting{
		ID: 1, Platform: "tiktok", CommissionPercent: "50.00", MinimumWithdraw: "10.00",
		Currency: "USD", IsActive: true, UpdatedAt: now,
	}

	m.nextID = 200
}

func (m *Memory) seedBlogPosts(now time.Time) {
	published := now
	for _, p := range []domain.BlogPost{
		{
			ID:              1,
			Title:           "How Much Is 1000 TikTok Coins?",
			Slug:            "how-much-is-1000-tiktok-coins",
			Excerpt:         "Complete breakdown of TikTok coin values and conversion rates across different countries.",
			Content:         "<h1>Understanding TikTok Coin Values</h1><p>TikTok coins are a virtual currency used within the platform for purchasing gifts that can be sent to creators during live streams. Understanding their value is crucial for both creators and viewers.</p><h2>Current Value of 1000 TikTok Coins</h2><p>The value of 1000 TikTok coins varies by region and currency. In the United States, 1000 coins typically cost around $15 USD.</p><h3>Regional Pricing Differences</h3><ul><li>United States: $15.00 USD</li><li>United Kingdom: £12.00 GBP</li><li>India: ₹1,250 INR</li><li>Pakistan: Rs 4,200 PKR</li></ul>",
			MetaTitle:       "1000 TikTok Coins Value Calculator | TokRecharge",
			MetaDescription: "Calculate how much 1000 TikTok coins are worth in USD, EUR, INR and other currencies. Complete guide to TikTok coin values.",
			Keywords:        "tiktok coins value, 1000 tiktok coins, tiktok coin calculator",
			FocusKeyword:    "tiktok coins",
			Category:        "tiktok-coins",
			Tags:            "tiktok,coins,calculator,value",
			Featured:        true,
			Status:          domain.BlogStatusPublished,
			ReadingTime:     3,
			WordCount:       450,
			FleschScore:     "65.5",
			Headings: []domain.Heading{
				{Level: 2, Text: "Understanding TikTok Coin Values", Anchor: "understanding-tiktok-coin-values"},
				{Level: 3, Text: "Cost Breakdown", Anchor: "cost-breakdown"},
			},
			PublishedAt: &published,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:              2,
			Title:           "TikTok Gift Values and Creator Earnings Guide",
			Slug:            "tiktok-gift-values-creator-earnings",
			Excerpt:         "Complete guide to TikTok gifts, their coin costs, and how much creators actually earn from each gift.",
			Content:         "<h1>TikTok Gift Values and Creator Earnings</h1><p>TikTok gifts are virtual items that viewers can purchase with coins and send to creators during live streams. Each gift has a specific coin cost and diamond value for creators.</p><h2>Popular TikTok Gifts</h2><ul><li><strong>Rose (1 coin):</strong> The most basic gift, worth 0.5 diamonds</li><li><strong>TikTok (10 coins):</strong> Worth 5 diamonds</li><li><strong>Drama Queen (5000 coins):</strong> Worth 2500 diamonds</li></ul>",
			MetaTitle:       "TikTok Gift Values & Creator Earnings Calculator",
			MetaDescription: "Complete guide to TikTok gift values, coin costs, and creator earnings. Calculate how much creators earn from TikTok gifts.",
			Keywords:        "tiktok gifts, creator earnings, gift values",
			FocusKeyword:    "tiktok gifts",
			Category:        "creator-earnings",
			Tags:            "tiktok,gifts,earnings,creator,diamonds",
			Status:          domain.BlogStatusPublished,
			ReadingTime:     4,
			WordCount:       580,
			FleschScore:     "70.2",
			Headings: []domain.Heading{
				{Level: 2, Text: "Popular TikTok Gifts", Anchor: "popular-tiktok-gifts"},
				{Level: 3, Text: "Gift Categories", Anchor: "gift-categories"},
			},
			PublishedAt: &published,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:              3,
			Title:           "How to Recharge TikTok Coins: Complete Guide",
			Slug:            "how-to-recharge-tiktok-coins-guide",
			Excerpt:         "Learn how to buy TikTok coins in different countries and find the best deals on coin packages.",
			Content:         "<h1>How to Recharge TikTok Coins</h1><p>Recharging TikTok coins is the process of purchasing virtual currency to spend on gifts for your favorite creators. The process and pricing vary by country.</p><h2>Recharge Methods</h2><ul><li>Credit/Debit Cards</li><li>PayPal</li><li>Mobile carrier billing</li><li>Gift cards</li></ul>",
			MetaTitle:       "How to Buy TikTok Coins - Complete Recharge Guide",
			MetaDescription: "Learn how to recharge TikTok coins with our complete guide. Compare prices, find deals, and discover the best coin packages.",
			Keywords:        "buy tiktok coins, recharge tiktok, coin packages",
			FocusKeyword:    "buy tiktok coins",
			Category:        "recharge-guide",
			Tags:            "tiktok,recharge,coins,buy,guide",
			Status:          domain.BlogStatusDraft,
			ReadingTime:     2,
			WordCount:       320,
			FleschScore:     "60.8",
			Headings: []domain.Heading{
				{Level: 2, Text: "Recharge Methods", Anchor: "recharge-methods"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	} {
		m.blogPosts[p.ID] = p
	}
}
