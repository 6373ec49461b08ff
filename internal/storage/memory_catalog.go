package storage

import (
	"context"

	"tokrecharge_api/internal/domain"
)

// Tools

func (m *Memory) GetTools(ctx context.Context) ([]domain.Tool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Tool, 0, len(m.tools))
	for _, t := range m.tools {
		out = append(out, t)
	}
	sortByID(out, func(t domain.Tool) int64 { return t.ID })
	return out, nil
}

func (m *Memory) GetToolBySlug(ctx context.Context, slug string) (domain.Tool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.tools {
		if t.Slug == slug {
			return t, nil
		}
	}
	return domain.Tool{}, ErrNotFound
}

func (m *Memory) CreateTool(ctx context.Context, t domain.Tool) (domain.Tool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.tools {
		if existing.Slug == t.Slug {
			return domain.Tool{}, ErrDuplicate
		}
	}
	t.ID = m.allocID()
	t.CreatedAt = orNow(t.CreatedAt)
	m.tools[t.ID] = t
	return t, nil
}

func (m *Memory) UpdateTool(ctx context.Context, id int64, p domain.ToolPatch) (domain.Tool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tools[id]
	if !ok {
		return domain.Tool{}, ErrNotFound
	}
	if p.Slug != nil && *p.Slug != t.Slug {
		for _, existing := range m.tools {
			if existing.Slug == *p.Slug {
				return domain.Tool{}, ErrDuplicate
			}
		}
	}
	p.Apply(&t)
	m.tools[id] = t
	return t, nil
}

func (m *Memory) DeleteTool(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tools[id]; !ok {
		return false, nil
	}
	delete(m.tools, id)
	return true, nil
}

// Countries

func (m *Memory) GetCountries(ctx context.Context) ([]domain.Country, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Country, 0, len(m.countries))
	for _, c := range m.countries {
		out = append(out, c)
	}
	sortByID(out, func(c domain.Country) int64 { return c.ID })
	return out, nil
}

func (m *Memory) GetCountryByCode(ctx context.Context, code string) (domain.Country, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.countries {
		if c.Code == code {
			return c, nil
		}
	}
	return domain.Country{}, ErrNotFound
}

func (m *Memory) CreateCountry(ctx context.Context, c domain.Country) (domain.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.countries {
		if existing.Code == c.Code {
			return domain.Country{}, ErrDuplicate
		}
	}
	c.ID = m.allocID()
	m.countries[c.ID] = c
	return c, nil
}

func (m *Memory) UpdateCountry(ctx context.Context, id int64, p domain.CountryPatch) (domain.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.countries[id]
	if !ok {
		return domain.Country{}, ErrNotFound
	}
	if p.Code != nil && *p.Code != c.Code {
		for _, existing := range m.countries {
			if existing.Code == *p.Code {
				return domain.Country{}, ErrDuplicate
			}
		}
	}
	p.Apply(&c)
	m.countries[id] = c
	return c, nil
}

func (m *Memory) DeleteCountry(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.countries[id]; !ok {
		return false, nil
	}
	delete(m.countries, id)
	return true, nil
}

// Gifts

func (m *Memory) GetGifts(ctx context.Context) ([]domain.Gift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Gift, 0, len(m.gifts))
	for _, g := range m.gifts {
		out = append(out, g)
	}
	sortByID(out, func(g domain.Gift) int64 { return g.ID })
	return out, nil
}

func (m *Memory) GetGiftsByCategory(ctx context.Context, category string) ([]domain.Gift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Gift, 0)
	for _, g := range m.gifts {
		if g.Category == category {
			out = append(out, g)
		}
	}
	sortByID(out, func(g domain.Gift) int64 { return g.ID })
	return out, nil
}

func (m *Memory) CreateGift(ctx context.Context, g domain.Gift) (domain.Gift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g.ID = m.allocID()
	m.gifts[g.ID] = g
	return g, nil
}

func (m *Memory) UpdateGift(ctx context.Context, id int64, p domain.GiftPatch) (domain.Gift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.gifts[id]
	if !ok {
		return domain.Gift{}, ErrNotFound
	}
	p.Apply(&g)
	m.gifts[id] = g
	return g, nil
}

func (m *Memory) DeleteGift(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.gifts[id]; !ok {
		return false, nil
	}
	delete(m.gifts, id)
	return true, nil
}

// Recharge packages

func (m *Memory) GetRechargePackages(ctx context.Context) ([]domain.RechargePackage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.RechargePackage, 0, len(m.packages))
	for _, p := range m.packages {
		out = append(out, p)
	}
	sortByID(out, func(p domain.RechargePackage) int64 { return p.ID })
	return out, nil
}

func (m *Memory) GetRechargePackagesByCountry(ctx context.Context, countryID int64) ([]domain.RechargePackage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.RechargePackage, 0)
	for _, p := range m.packages {
		if p.CountryID == countryID {
			out = append(out, p)
		}
	}
	sortByID(out, func(p domain.RechargePackage) int64 { return p.ID })
	return out, nil
}

// CreateRechargePackage does not check that CountryID references an existing
// country; an orphaned package is tolerated (soft FK).
func (m *Memory) CreateRechargePackage(ctx context.Context, p domain.RechargePackage) (domain.RechargePackage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.allocID()
	m.packages[p.ID] = p
	return p, nil
}

func (m *Memory) UpdateRechargePackage(ctx context.Context, id int64, patch domain.RechargePackagePatch) (domain.RechargePackage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.packages[id]
	if !ok {
		return domain.RechargePackage{}, ErrNotFound
	}
	patch.Apply(&p)
	m.packages[id] = p
	return p, nil
}

func (m *Memory) DeleteRechargePackage(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.packages[id]; !ok {
		return false, nil
	}
	delete(m.packages, id)
	return true, nil
}
