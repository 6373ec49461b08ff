package storage

import (
	"context"

	"tokrecharge_api/internal/domain"
)

func (m *Memory) GetBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.BlogPost, 0, len(m.blogPosts))
	for _, p := range m.blogPosts {
		out = append(out, p)
	}
	sortByID(out, func(p domain.BlogPost) int64 { return p.ID })
	return out, nil
}

func (m *Memory) GetBlogPostBySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.blogPosts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.BlogPost{}, ErrNotFound
}

func (m *Memory) GetBlogPostByID(ctx context.Context, id int64) (domain.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.blogPosts[id]
	if !ok {
		return domain.BlogPost{}, ErrNotFound
	}
	return p, nil
}

func (m *Memory) CreateBlogPost(ctx context.Context, p domain.BlogPost) (domain.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.blogPosts {
		if existing.Slug == p.Slug {
			return domain.BlogPost{}, ErrDuplicate
		}
	}
	now := nowUTC()
	p.ID = m.allocID()
	p.CreatedAt = orNow(p.CreatedAt)
	p.UpdatedAt = p.CreatedAt
	if p.Status == domain.BlogStatusPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
	m.blogPosts[p.ID] = p
	return p, nil
}

func (m *Memory) UpdateBlogPost(ctx context.Context, id int64, patch domain.BlogPostPatch) (domain.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.blogPosts[id]
	if !ok {
		return domain.BlogPost{}, ErrNotFound
	}
	if patch.Slug != nil && *patch.Slug != p.Slug {
		for _, existing := range m.blogPosts {
			if existing.Slug == *patch.Slug {
				return domain.BlogPost{}, ErrDuplicate
			}
		}
	}
	patch.Apply(&p)
	now := nowUTC()
	// publishedAt is set on the first transition to published and is
	// immutable afterwards, even if the status round-trips.
	if p.Status == domain.BlogStatusPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
	p.UpdatedAt = now
	m.blogPosts[id] = p
	return p, nil
}

func (m *Memory) DeleteBlogPost(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blogPosts[id]; !ok {
		return false, nil
	}
	delete(m.blogPosts, id)
	return true, nil
}

func (m *Memory) GetPublishedBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.BlogPost, 0)
	for _, p := range m.blogPosts {
		if p.Status == domain.BlogStatusPublished {
			out = append(out, p)
		}
	}
	sortByID(out, func(p domain.BlogPost) int64 { return p.ID })
	return out, nil
}
