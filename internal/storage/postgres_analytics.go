package storage

import (
	"context"

	"tokrecharge_api/internal/domain"
)

const visitorColumns = `id, ip_address, country, city, user_agent, referer, page, visited_at`

func (p *Postgres) GetVisitorLogs(ctx context.Context, limit int) ([]domain.VisitorLog, error) {
	sql := `SELECT ` + visitorColumns + ` FROM visitor_logs ORDER BY visited_at DESC`
	args := []any{}
	if limit > 0 {
		sql += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.VisitorLog, 0)
	for rows.Next() {
		var v domain.VisitorLog
		if err := rows.Scan(&v.ID, &v.IPAddress, &v.Country, &v.City, &v.UserAgent,
			&v.Referer, &v.Page, &v.VisitedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateVisitorLog(ctx context.Context, v domain.VisitorLog) (domain.VisitorLog, error) {
	if v.VisitedAt.IsZero() {
		err := p.db.QueryRow(ctx,
			`INSERT INTO visitor_logs (ip_address, country, city, user_agent, referer, page)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, visited_at`,
			v.IPAddress, v.Country, v.City, v.UserAgent, v.Referer, v.Page,
		).Scan(&v.ID, &v.VisitedAt)
		return v, wrapErr(err)
	}
	err := p.db.QueryRow(ctx,
		`INSERT INTO visitor_logs (ip_address, country, city, user_agent, referer, page, visited_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		v.IPAddress, v.Country, v.City, v.UserAgent, v.Referer, v.Page, v.VisitedAt,
	).Scan(&v.ID)
	return v, wrapErr(err)
}

func (p *Postgres) GetVisitorStatsByCountry(ctx context.Context) ([]domain.CountryStat, error) {
	rows, err := p.db.Query(ctx,
		`SELECT country, COUNT(*) FROM visitor_logs
		 WHERE country <> ''
		 GROUP BY country
		 ORDER BY COUNT(*) DESC, country`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.CountryStat, 0)
	for rows.Next() {
		var s domain.CountryStat
		if err := rows.Scan(&s.Country, &s.Count); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *Postgres) GetVisitorStatsByPage(ctx context.Context) ([]domain.PageStat, error) {
	rows, err := p.db.Query(ctx,
		`SELECT page, COUNT(*) FROM visitor_logs
		 GROUP BY page
		 ORDER BY COUNT(*) DESC, page`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.PageStat, 0)
	for rows.Next() {
		var s domain.PageStat
		if err := rows.Scan(&s.Page, &s.Count); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *Postgres) GetDailyVisitorCount(ctx context.Context) ([]domain.DailyCount, error) {
	rows, err := p.db.Query(ctx,
		`SELECT to_char(visited_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		 FROM visitor_logs
		 GROUP BY day
		 ORDER BY day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.DailyCount, 0)
	for rows.Next() {
		var d domain.DailyCount
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
