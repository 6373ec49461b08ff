package storage

import (
	"sort"
	"sync"
	"time"

	"tokrecharge_api/internal/domain"
)

// Memory is the default Store: process-local maps guarded by a single
// RWMutex. Gin serves requests concurrently, so unlike a single-threaded
// runtime the lock is required.
type Memory struct {
	mu sync.RWMutex

	tools       map[int64]domain.Tool
	countries   map[int64]domain.Country
	gifts       map[int64]domain.Gift
	blogPosts   map[int64]domain.BlogPost
	packages    map[int64]domain.RechargePackage
	adminUsers  map[int64]domain.AdminUser
	settings    map[string]domain.SiteSetting
	visitorLogs []domain.VisitorLog
	adsenseAds  map[int64]domain.Adsense
	coinRates   map[string]domain.CoinRate
	commissions map[string]domain.CommissionSetting

	nextID int64
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty store. Tests and embedded deployments construct
// their own instances; there is no package-level singleton.
func NewMemory() *Memory {
	return &Memory{
		tools:       make(map[int64]domain.Tool),
		countries:   make(map[int64]domain.Country),
		gifts:       make(map[int64]domain.Gift),
		blogPosts:   make(map[int64]domain.BlogPost),
		packages:    make(map[int64]domain.RechargePackage),
		adminUsers:  make(map[int64]domain.AdminUser),
		settings:    make(map[string]domain.SiteSetting),
		adsenseAds:  make(map[int64]domain.Adsense),
		coinRates:   make(map[string]domain.CoinRate),
		commissions: make(map[string]domain.CommissionSetting),
		nextID:      1,
	}
}

// NewSeededMemory returns a store pre-loaded with the fixture catalog:
// tools, countries, gifts, sample posts, recharge packages, the default
// super_admin account, site settings, coin rates and the tiktok commission.
func NewSeededMemory() *Memory {
	m := NewMemory()
	m.seed()
	return m
}

// allocID must be called with the write lock held.
func (m *Memory) allocID() int64 {
	id := m.nextID
	m.nextID++
	return id
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// orNow keeps a caller-supplied timestamp (tests and fixtures) and defaults
// the zero value to the current time.
func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return nowUTC()
	}
	return t
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
