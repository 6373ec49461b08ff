package storage

import (
	"context"
	"sort"

	"tokrecharge_api/internal/domain"
)

func (m *Memory) GetVisitorLogs(ctx context.Context, limit int) ([]domain.VisitorLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.VisitorLog, len(m.visitorLogs))
	copy(out, m.visitorLogs)
	sort.Slice(out, func(i, j int) bool { return out[i].VisitedAt.After(out[j].VisitedAt) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) CreateVisitorLog(ctx context.Context, v domain.VisitorLog) (domain.VisitorLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v.ID = m.allocID()
	v.VisitedAt = orNow(v.VisitedAt)
	m.visitorLogs = append(m.visitorLogs, v)
	return v, nil
}

func (m *Memory) GetVisitorStatsByCountry(ctx context.Context) ([]domain.CountryStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[string]int)
	for _, v := range m.visitorLogs {
		if v.Country != "" {
			counts[v.Country]++
		}
	}
	out := make([]domain.CountryStat, 0, len(counts))
	for country, n := range counts {
		out = append(out, domain.CountryStat{Country: country, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Country < out[j].Country
	})
	return out, nil
}

func (m *Memory) GetVisitorStatsByPage(ctx context.Context) ([]domain.PageStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[string]int)
	for _, v := range m.visitorLogs {
		counts[v.Page]++
	}
	out := make([]domain.PageStat, 0, len(counts))
	for page, n := range counts {
		out = append(out, domain.PageStat{Page: page, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Page < out[j].Page
	})
	return out, nil
}

// GetDailyVisitorCount tallies visits per UTC calendar day, ascending by date.
func (m *Memory) GetDailyVisitorCount(ctx context.Context) ([]domain.DailyCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[string]int)
	for _, v := range m.visitorLogs {
		counts[v.VisitedAt.UTC().Format("2006-01-02")]++
	}
	out := make([]domain.DailyCount, 0, len(counts))
	for date, n := range counts {
		out = append(out, domain.DailyCount{Date: date, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
