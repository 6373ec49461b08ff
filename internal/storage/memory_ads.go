package storage

import (
	"context"

	"tokrecharge_api/internal/domain"
)

// Adsense

func (m *Memory) GetAdsenseAds(ctx context.Context) ([]domain.Adsense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Adsense, 0, len(m.adsenseAds))
	for _, a := range m.adsenseAds {
		out = append(out, a)
	}
	sortByID(out, func(a domain.Adsense) int64 { return a.ID })
	return out, nil
}

// GetAdsenseAdsByLocation returns only active units; disabled ads never reach
// the public site.
func (m *Memory) GetAdsenseAdsByLocation(ctx context.Context, location string) ([]domain.Adsense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Adsense, 0)
	for _, a := range m.adsenseAds {
		if a.Location == location && a.IsActive {
			out = append(out, a)
		}
	}
	sortByID(out, func(a domain.Adsense) int64 { return a.ID })
	return out, nil
}

func (m *Memory) CreateAdsenseAd(ctx context.Context, a domain.Adsense) (domain.Adsense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.allocID()
	a.CreatedAt = orNow(a.CreatedAt)
	a.UpdatedAt = a.CreatedAt
	m.adsenseAds[a.ID] = a
	return a, nil
}

func (m *Memory) UpdateAdsenseAd(ctx context.Context, id int64, p domain.AdsensePatch) (domain.Adsense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.adsenseAds[id]
	if !ok {
		return domain.Adsense{}, ErrNotFound
	}
	p.Apply(&a)
	a.UpdatedAt = nowUTC()
	m.adsenseAds[id] = a
	return a, nil
}

func (m *Memory) DeleteAdsenseAd(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.adsenseAds[id]; !ok {
		return false, nil
	}
	delete(m.adsenseAds, id)
	return true, nil
}

// Coin rates

func (m *Memory) GetCoinRates(ctx context.Context) ([]domain.CoinRate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.CoinRate, 0, len(m.coinRates))
	for _, r := range m.coinRates {
		out = append(out, r)
	}
	sortByID(out, func(r domain.CoinRate) int64 { return r.ID })
	return out, nil
}

func (m *Memory) GetCoinRateByCurrency(ctx context.Context, currency string) (domain.CoinRate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.coinRates[currency]
	if !ok {
		return domain.CoinRate{}, ErrNotFound
	}
	return r, nil
}

func (m *Memory) SetCoinRate(ctx context.Context, r domain.CoinRate) (domain.CoinRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.coinRates[r.Currency]; ok {
		r.ID = existing.ID
	} else {
		r.ID = m.allocID()
	}
	r.UpdatedAt = nowUTC()
	m.coinRates[r.Currency] = r
	return r, nil
}

func (m *Memory) UpdateCoinRate(ctx context.Context, currency, rate string) (domain.CoinRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.coinRates[currency]
	if !ok {
		return domain.CoinRate{}, ErrNotFound
	}
	r.Rate = rate
	r.UpdatedAt = nowUTC()
	m.coinRates[currency] = r
	return r, nil
}

// Commission settings

func (m *Memory) GetCommissionSettings(ctx context.Context) ([]domain.CommissionSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.CommissionSetting, 0, len(m.commissions))
	for _, s := range m.commissions {
		out = append(out, s)
	}
	sortByID(out, func(s domain.CommissionSetting) int64 { return s.ID })
	return out, nil
}

func (m *Memory) GetCommissionSettingByPlatform(ctx context.Context, platform string) (domain.CommissionSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.commissions[platform]
	if !ok {
		return domain.CommissionSetting{}, ErrNotFound
	}
	return s, nil
}

func (m *Memory) SetCommissionSetting(ctx context.Context, s domain.CommissionSetting) (domain.CommissionSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.commissions[s.Platform]; ok {
		s.ID = existing.ID
	} else {
		s.ID = m.allocID()
	}
	s.UpdatedAt = nowUTC()
	m.commissions[s.Platform] = s
	return s, nil
}

func (m *Memory) UpdateCommissionSetting(ctx context.Context, platform string, p domain.CommissionSettingPatch) (domain.CommissionSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.commissions[platform]
	if !ok {
		return domain.CommissionSetting{}, ErrNotFound
	}
	p.Apply(&s)
	s.UpdatedAt = nowUTC()
	m.commissions[platform] = s
	return s, nil
}
