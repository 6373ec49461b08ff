package storage

import (
	"context"
	"encoding/json"

	"tokrecharge_api/internal/domain"
)

const blogColumns = `id, title, slug, excerpt, content, meta_title, meta_description, keywords,
	focus_keyword, canonical_url, og_image, category, tags, featured_image, cover_image,
	featured, status, reading_time, word_count, flesch_score, headings, scheduled_at,
	published_at, created_at, updated_at`

func scanBlogPost(row interface{ Scan(...any) error }) (domain.BlogPost, error) {
	var b domain.BlogPost
	var headings []byte
	err := row.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.MetaTitle,
		&b.MetaDescription, &b.Keywords, &b.FocusKeyword, &b.CanonicalURL, &b.OGImage,
		&b.Category, &b.Tags, &b.FeaturedImage, &b.CoverImage, &b.Featured, &b.Status,
		&b.ReadingTime, &b.WordCount, &b.FleschScore, &headings, &b.ScheduledAt,
		&b.PublishedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.BlogPost{}, wrapErr(err)
	}
	if len(headings) > 0 {
		if err := json.Unmarshal(headings, &b.Headings); err != nil {
			return domain.BlogPost{}, err
		}
	}
	return b, nil
}

func marshalHeadings(h []domain.Heading) ([]byte, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal(h)
}

func (p *Postgres) GetBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return p.queryBlogPosts(ctx, `SELECT `+blogColumns+` FROM blog_posts ORDER BY id`)
}

func (p *Postgres) GetPublishedBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return p.queryBlogPosts(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE status = $1 ORDER BY id`, domain.BlogStatusPublished)
}

func (p *Postgres) queryBlogPosts(ctx context.Context, sql string, args ...any) ([]domain.BlogPost, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.BlogPost, 0)
	for rows.Next() {
		b, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (p *Postgres) GetBlogPostBySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	return scanBlogPost(p.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1`, slug))
}

func (p *Postgres) GetBlogPostByID(ctx context.Context, id int64) (domain.BlogPost, error) {
	return scanBlogPost(p.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id))
}

func (p *Postgres) CreateBlogPost(ctx context.Context, b domain.BlogPost) (domain.BlogPost, error) {
	headings, err := marshalHeadings(b.Headings)
	if err != nil {
		return domain.BlogPost{}, err
	}
	err = p.db.QueryRow(ctx,
		`INSERT INTO blog_posts (title, slug, excerpt, content, meta_title, meta_description,
			keywords, focus_keyword, canonical_url, og_image, category, tags, featured_image,
			cover_image, featured, status, reading_time, word_count, flesch_score, headings,
			scheduled_at, published_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,
			CASE WHEN $16 = 'published' THEN now() ELSE NULL END)
		 RETURNING id, published_at, created_at, updated_at`,
		b.Title, b.Slug, b.Excerpt, b.Content, b.MetaTitle, b.MetaDescription, b.Keywords,
		b.FocusKeyword, b.CanonicalURL, b.OGImage, b.Category, b.Tags, b.FeaturedImage,
		b.CoverImage, b.Featured, b.Status, b.ReadingTime, b.WordCount, b.FleschScore,
		headings, b.ScheduledAt,
	).Scan(&b.ID, &b.PublishedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.BlogPost{}, wrapErr(err)
	}
	return b, nil
}

func (p *Postgres) UpdateBlogPost(ctx context.Context, id int64, patch domain.BlogPostPatch) (domain.BlogPost, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return domain.BlogPost{}, err
	}
	defer tx.Rollback(ctx)

	b, err := scanBlogPost(tx.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return domain.BlogPost{}, err
	}
	patch.Apply(&b)
	headings, err := marshalHeadings(b.Headings)
	if err != nil {
		return domain.BlogPost{}, err
	}
	// published_at is written once, on the first transition to published.
	err = tx.QueryRow(ctx,
		`UPDATE blog_posts SET title=$1, slug=$2, excerpt=$3, content=$4, meta_title=$5,
			meta_description=$6, keywords=$7, focus_keyword=$8, canonical_url=$9, og_image=$10,
			category=$11, tags=$12, featured_image=$13, cover_image=$14, featured=$15,
			status=$16, reading_time=$17, word_count=$18, flesch_score=$19, headings=$20,
			scheduled_at=$21,
			published_at = CASE WHEN $16 = 'published' AND published_at IS NULL THEN now() ELSE published_at END,
			updated_at = now()
		 WHERE id=$22
		 RETURNING published_at, updated_at`,
		b.Title, b.Slug, b.Excerpt, b.Content, b.MetaTitle, b.MetaDescription, b.Keywords,
		b.FocusKeyword, b.CanonicalURL, b.OGImage, b.Category, b.Tags, b.FeaturedImage,
		b.CoverImage, b.Featured, b.Status, b.ReadingTime, b.WordCount, b.FleschScore,
		headings, b.ScheduledAt, id,
	).Scan(&b.PublishedAt, &b.UpdatedAt)
	if err != nil {
		return domain.BlogPost{}, wrapErr(err)
	}
	return b, wrapErr(tx.Commit(ctx))
}

func (p *Postgres) DeleteBlogPost(ctx context.Context, id int64) (bool, error) {
	res, err := p.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
