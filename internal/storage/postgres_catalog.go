package storage

import (
	"context"

	"tokrecharge_api/internal/domain"
)

const toolColumns = `id, name, slug, description, icon, color, category, is_active, created_at`

func scanTool(row interface{ Scan(...any) error }) (domain.Tool, error) {
	var t domain.Tool
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.Icon, &t.Color, &t.Category, &t.IsActive, &t.CreatedAt)
	return t, wrapErr(err)
}

func (p *Postgres) GetTools(ctx context.Context) ([]domain.Tool, error) {
	rows, err := p.db.Query(ctx, `SELECT `+toolColumns+` FROM tools ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Tool, 0)
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (p *Postgres) GetToolBySlug(ctx context.Context, slug string) (domain.Tool, error) {
	return scanTool(p.db.QueryRow(ctx, `SELECT `+toolColumns+` FROM tools WHERE slug = $1`, slug))
}

func (p *Postgres) CreateTool(ctx context.Context, t domain.Tool) (domain.Tool, error) {
	err := p.db.QueryRow(ctx,
		`INSERT INTO tools (name, slug, description, icon, color, category, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		t.Name, t.Slug, t.Description, t.Icon, t.Color, t.Category, t.IsActive,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return domain.Tool{}, wrapErr(err)
	}
	return t, nil
}

func (p *Postgres) UpdateTool(ctx context.Context, id int64, patch domain.ToolPatch) (domain.Tool, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return domain.Tool{}, err
	}
	defer tx.Rollback(ctx)

	t, err := scanTool(tx.QueryRow(ctx, `SELECT `+toolColumns+` FROM tools WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return domain.Tool{}, err
	}
	patch.Apply(&t)
	_, err = tx.Exec(ctx,
		`UPDATE tools SET name=$1, slug=$2, description=$3, icon=$4, color=$5, category=$6, is_active=$7 WHERE id=$8`,
		t.Name, t.Slug, t.Description, t.Icon, t.Color, t.Category, t.IsActive, id,
	)
	if err != nil {
		return domain.Tool{}, wrapErr(err)
	}
	return t, wrapErr(tx.Commit(ctx))
}

func (p *Postgres) DeleteTool(ctx context.Context, id int64) (bool, error) {
	res, err := p.db.Exec(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

const countryColumns = `id, name, code, currency, coin_rate::text, flag, is_active`

func scanCountry(row interface{ Scan(...any) error }) (domain.Country, error) {
	var c domain.Country
	err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Currency, &c.CoinRate, &c.Flag, &c.IsActive)
	return c, wrapErr(err)
}

func (p *Postgres) GetCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := p.db.Query(ctx, `SELECT `+countryColumns+` FROM countries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Country, 0)
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *Postgres) GetCountryByCode(ctx context.Context, code string) (domain.Country, error) {
	return scanCountry(p.db.QueryRow(ctx, `SELECT `+countryColumns+` FROM countries WHERE code = $1`, code))
}

func (p *Postgres) CreateCountry(ctx context.Context, c domain.Country) (domain.Country, error) {
	err := p.db.QueryRow(ctx,
		`INSERT INTO countries (name, code, currency, coin_rate, flag, is_active)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6)
		 RETURNING id`,
		c.Name, c.Code, c.Currency, c.CoinRate, c.Flag, c.IsActive,
	).Scan(&c.ID)
	if err != nil {
		return domain.Country{}, wrapErr(err)
	}
	return c, nil
}

func (p *Postgres) UpdateCountry(ctx context.Context, id int64, patch domain.CountryPatch) (domain.Country, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return domain.Country{}, err
	}
	defer tx.Rollback(ctx)

	c, err := scanCountry(tx.QueryRow(ctx, `SELECT `+countryColumns+` FROM countries WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return domain.Country{}, err
	}
	patch.Apply(&c)
	_, err = tx.Exec(ctx,
		`UPDATE countries SET name=$1, code=$2, currency=$3, coin_rate=$4::numeric, flag=$5, is_active=$6 WHERE id=$7`,
		c.Name, c.Code, c.Currency, c.CoinRate, c.Flag, c.IsActive, id,
	)
	if err != nil {
		return domain.Country{}, wrapErr(err)
	}
	return c, wrapErr(tx.Commit(ctx))
}

func (p *Postgres) DeleteCountry(ctx context.Context, id int64) (bool, error) {
	res, err := p.db.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

const giftColumns = `id, name, coin_cost, diamond_value, category, rarity, is_active`

func scanGift(row interface{ Scan(...any) error }) (domain.Gift, error) {
	var g domain.Gift
	err := row.Scan(&g.ID, &g.Name, &g.CoinCost, &g.DiamondValue, &g.Category, &g.Rarity, &g.IsActive)
	return g, wrapErr(err)
}

func (p *Postgres) GetGifts(ctx context.Context) ([]domain.Gift, error) {
	return p.queryGifts(ctx, `SELECT `+giftColumns+` FROM gifts ORDER BY id`)
}

func (p *Postgres) GetGiftsByCategory(ctx context.Context, category string) ([]domain.Gift, error) {
	return p.queryGifts(ctx, `SELECT `+giftColumns+` FROM gifts WHERE category = $1 ORDER BY id`, category)
}

func (p *Postgres) queryGifts(ctx context.Context, sql string, args ...any) ([]domain.Gift, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Gift, 0)
	for rows.Next() {
		g, err := scanGift(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateGift(ctx context.Context, g domain.Gift) (domain.Gift, error) {
	err := p.db.QueryRow(ctx,
		`INSERT INTO gifts (name, coin_cost, diamond_value, category, rarity, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		g.Name, g.CoinCost, g.DiamondValue, g.Category, g.Rarity, g.IsActive,
	).Scan(&g.ID)
	if err != nil {
		return domain.Gift{}, wrapErr(err)
	}
	return g, nil
}

func (p *Postgres) UpdateGift(ctx context.Context, id int64, patch domain.GiftPatch) (domain.Gift, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return domain.Gift{}, err
	}
	defer tx.Rollback(ctx)

	g, err := scanGift(tx.QueryRow(ctx, `SELECT `+giftColumns+` FROM gifts WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return domain.Gift{}, err
	}
	patch.Apply(&g)
	_, err = tx.Exec(ctx,
		`UPDATE gifts SET name=$1, coin_cost=$2, diamond_value=$3, category=$4, rarity=$5, is_active=$6 WHERE id=$7`,
		g.Name, g.CoinCost, g.DiamondValue, g.Category, g.Rarity, g.IsActive, id,
	)
	if err != nil {
		return domain.Gift{}, wrapErr(err)
	}
	return g, wrapErr(tx.Commit(ctx))
}

func (p *Postgres) DeleteGift(ctx context.Context, id int64) (bool, error) {
	res, err := p.db.Exec(ctx, `DELETE FROM gifts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

const packageColumns = `id, country_id, coins, price::text, currency, is_active`

func scanPackage(row interface{ Scan(...any) error }) (domain.RechargePackage, error) {
	var r domain.RechargePackage
	err := row.Scan(&r.ID, &r.CountryID, &r.Coins, &r.Price, &r.Currency, &r.IsActive)
	return r, wrapErr(err)
}

func (p *Postgres) GetRechargePackages(ctx context.Context) ([]domain.RechargePackage, error) {
	return p.queryPackages(ctx, `SELECT `+packageColumns+` FROM recharge_packages ORDER BY id`)
}

func (p *Postgres) GetRechargePackagesByCountry(ctx context.Context, countryID int64) ([]domain.RechargePackage, error) {
	return p.queryPackages(ctx, `SELECT `+packageColumns+` FROM recharge_packages WHERE country_id = $1 ORDER BY id`, countryID)
}

func (p *Postgres) queryPackages(ctx context.Context, sql string, args ...any) ([]domain.RechargePackage, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.RechargePackage, 0)
	for rows.Next() {
		r, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateRechargePackage(ctx context.Context, r domain.RechargePackage) (domain.RechargePackage, error) {
	err := p.db.QueryRow(ctx,
		`INSERT INTO recharge_packages (country_id, coins, price, currency, is_active)
		 VALUES ($1, $2, $3::numeric, $4, $5)
		 RETURNING id`,
		r.CountryID, r.Coins, r.Price, r.Currency, r.IsActive,
	).Scan(&r.ID)
	if err != nil {
		return domain.RechargePackage{}, wrapErr(err)
	}
	return r, nil
}

func (p *Postgres) UpdateRechargePackage(ctx context.Context, id int64, patch domain.RechargePackagePatch) (domain.RechargePackage, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return domain.RechargePackage{}, err
	}
	defer tx.Rollback(ctx)

	r, err := scanPackage(tx.QueryRow(ctx, `SELECT `+packageColumns+` FROM recharge_packages WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return domain.RechargePackage{}, err
	}
	patch.Apply(&r)
	_, err = tx.Exec(ctx,
		`UPDATE recharge_packages SET country_id=$1, coins=$2, price=$3::numeric, currency=$4, is_active=$5 WHERE id=$6`,
		r.CountryID, r.Coins, r.Price, r.Currency, r.IsActive, id,
	)
	if err != nil {
		return domain.RechargePackage{}, wrapErr(err)
	}
	return r, wrapErr(tx.Commit(ctx))
}

func (p *Postgres) DeleteRechargePackage(ctx context.Context, id int64) (bool, error) {
	res, err := p.db.Exec(ctx, `DELETE FROM recharge_packages WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
