package storage

import (
	"context"

	"tokrecharge_api/internal/domain"
)

// Admin users

func (m *Memory) GetAdminUsers(ctx context.Context) ([]domain.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.AdminUser, 0, len(m.adminUsers))
	for _, u := range m.adminUsers {
		out = append(out, u)
	}
	sortByID(out, func(u domain.AdminUser) int64 { return u.ID })
	return out, nil
}

func (m *Memory) GetAdminUserByUsername(ctx context.Context, username string) (domain.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.adminUsers {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.AdminUser{}, ErrNotFound
}

func (m *Memory) GetAdminUserByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.adminUsers {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.AdminUser{}, ErrNotFound
}

func (m *Memory) CreateAdminUser(ctx context.Context, u domain.AdminUser) (domain.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.adminUsers {
		if existing.Username == u.Username || existing.Email == u.Email {
			return domain.AdminUser{}, ErrDuplicate
		}
	}
	u.ID = m.allocID()
	u.CreatedAt = orNow(u.CreatedAt)
	u.UpdatedAt = u.CreatedAt
	u.LastLogin = nil
	m.adminUsers[u.ID] = u
	return u, nil
}

func (m *Memory) UpdateAdminUser(ctx context.Context, id int64, p domain.AdminUserPatch) (domain.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.adminUsers[id]
	if !ok {
		return domain.AdminUser{}, ErrNotFound
	}
	if p.Email != nil && *p.Email != u.Email {
		for _, existing := range m.adminUsers {
			if existing.Email == *p.Email {
				return domain.AdminUser{}, ErrDuplicate
			}
		}
	}
	p.Apply(&u)
	u.UpdatedAt = nowUTC()
	m.adminUsers[id] = u
	return u, nil
}

func (m *Memory) UpdateAdminUserLastLogin(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.adminUsers[id]
	if !ok {
		return ErrNotFound
	}
	now := nowUTC()
	u.LastLogin = &now
	m.adminUsers[id] = u
	return nil
}

// Site settings

func (m *Memory) GetSiteSettings(ctx context.Context) ([]domain.SiteSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.SiteSetting, 0, len(m.settings))
	for _, s := range m.settings {
		out = append(out, s)
	}
	sortByID(out, func(s domain.SiteSetting) int64 { return s.ID })
	return out, nil
}

func (m *Memory) GetSiteSettingByKey(ctx context.Context, key string) (domain.SiteSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.settings[key]
	if !ok {
		return domain.SiteSetting{}, ErrNotFound
	}
	return s, nil
}

// SetSiteSetting is an upsert keyed on the natural key; the generated id
// survives replacement.
func (m *Memory) SetSiteSetting(ctx context.Context, s domain.SiteSetting) (domain.SiteSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.settings[s.Key]; ok {
		s.ID = existing.ID
	} else {
		s.ID = m.allocID()
	}
	s.UpdatedAt = nowUTC()
	m.settings[s.Key] = s
	return s, nil
}

func (m *Memory) UpdateSiteSetting(ctx context.Context, key, value string) (domain.SiteSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.settings[key]
	if !ok {
		return domain.SiteSetting{}, ErrNotFound
	}
	s.Value = value
	s.UpdatedAt = nowUTC()
	m.settings[key] = s
	return s, nil
}
