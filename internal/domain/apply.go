package domain

// Apply methods copy the non-nil patch fields onto an entity. Persistence
// concerns (uniqueness, updatedAt, publishedAt) stay in the stores.

func (p ToolPatch) Apply(t *Tool) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Slug != nil {
		t.Slug = *p.Slug
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Icon != nil {
		t.Icon = *p.Icon
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
}

func (p CountryPatch) Apply(c *Country) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Code != nil {
		c.Code = *p.Code
	}
	if p.Currency != nil {
		c.Currency = *p.Currency
	}
	if p.CoinRate != nil {
		c.CoinRate = *p.CoinRate
	}
	if p.Flag != nil {
		c.Flag = *p.Flag
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
}

func (p GiftPatch) Apply(g *Gift) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.CoinCost != nil {
		g.CoinCost = *p.CoinCost
	}
	if p.DiamondValue != nil {
		g.DiamondValue = *p.DiamondValue
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Rarity != nil {
		g.Rarity = *p.Rarity
	}
	if p.IsActive != nil {
		g.IsActive = *p.IsActive
	}
}

func (p BlogPostPatch) Apply(b *BlogPost) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Slug != nil {
		b.Slug = *p.Slug
	}
	if p.Excerpt != nil {
		b.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	if p.MetaTitle != nil {
		b.MetaTitle = *p.MetaTitle
	}
	if p.MetaDescription != nil {
		b.MetaDescription = *p.MetaDescription
	}
	if p.Keywords != nil {
		b.Keywords = *p.Keywords
	}
	if p.FocusKeyword != nil {
		b.FocusKeyword = *p.FocusKeyword
	}
	if p.CanonicalURL != nil {
		b.CanonicalURL = *p.CanonicalURL
	}
	if p.OGImage != nil {
		b.OGImage = *p.OGImage
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Tags != nil {
		b.Tags = *p.Tags
	}
	if p.FeaturedImage != nil {
		b.FeaturedImage = *p.FeaturedImage
	}
	if p.CoverImage != nil {
		b.CoverImage = *p.CoverImage
	}
	if p.Featured != nil {
		b.Featured = *p.Featured
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.ReadingTime != nil {
		b.ReadingTime = *p.ReadingTime
	}
	if p.WordCount != nil {
		b.WordCount = *p.WordCount
	}
	if p.FleschScore != nil {
		b.FleschScore = *p.FleschScore
	}
	if p.Headings != nil {
		b.Headings = p.Headings
	}
	if p.ScheduledAt != nil {
		b.ScheduledAt = p.ScheduledAt
	}
}

func (p RechargePackagePatch) Apply(r *RechargePackage) {
	if p.CountryID != nil {
		r.CountryID = *p.CountryID
	}
	if p.Coins != nil {
		r.Coins = *p.Coins
	}
	if p.Price != nil {
		r.Price = *p.Price
	}
	if p.Currency != nil {
		r.Currency = *p.Currency
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
}

func (p AdminUserPatch) Apply(u *AdminUser) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}

func (p AdsensePatch) Apply(a *Adsense) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.AdCode != nil {
		a.AdCode = *p.AdCode
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
}

func (p CommissionSettingPatch) Apply(s *CommissionSetting) {
	if p.CommissionPercent != nil {
		s.CommissionPercent = *p.CommissionPercent
	}
	if p.MinimumWithdraw != nil {
		s.MinimumWithdraw = *p.MinimumWithdraw
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}
