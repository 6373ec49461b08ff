package storage

import (
	"context"

	"tokrecharge_api/internal/domain"
)

const adsenseColumns = `id, name, ad_code, location, is_active, created_at, updated_at`

func scanAdsense(row interface{ Scan(...any) error }) (domain.Adsense, error) {
	var a domain.Adsense
	err := row.Scan(&a.ID, &a.Name, &a.AdCode, &a.Location, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	return a, wrapErr(err)
}

func (p *Postgres) GetAdsenseAds(ctx context.Context) ([]domain.Adsense, error) {
	return p.queryAdsense(ctx, `SELECT `+adsenseColumns+` FROM adsense ORDER BY id`)
}

func (p *Postgres) GetAdsenseAdsByLocation(ctx context.Context, location string) ([]domain.Adsense, error) {
	return p.queryAdsense(ctx,
		`SELECT `+adsenseColumns+` FROM adsense WHERE location = $1 AND is_active ORDER BY id`, location)
}

func (p *Postgres) queryAdsense(ctx context.Context, sql string, args ...any) ([]domain.Adsense, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Adsense, 0)
	for rows.Next() {
		a, err := scanAdsense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateAdsenseAd(ctx context.Context, a domain.Adsense) (domain.Adsense, error) {
	err := p.db.QueryRow(ctx,
		`INSERT INTO adsense (name, ad_code, location, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.AdCode, a.Location, a.IsActive,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Adsense{}, wrapErr(err)
	}
	return a, nil
}

func (p *Postgres) UpdateAdsenseAd(ctx context.Context, id int64, patch domain.AdsensePatch) (domain.Adsense, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return domain.Adsense{}, err
	}
	defer tx.Rollback(ctx)

	a, err := scanAdsense(tx.QueryRow(ctx, `SELECT `+adsenseColumns+` FROM adsense WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return domain.Adsense{}, err
	}
	patch.Apply(&a)
	err = tx.QueryRow(ctx,
		`UPDATE adsense SET name=$1, ad_code=$2, location=$3, is_active=$4, updated_at=now() WHERE id=$5
		 RETURNING updated_at`,
		a.Name, a.AdCode, a.Location, a.IsActive, id,
	).Scan(&a.UpdatedAt)
	if err != nil {
		return domain.Adsense{}, wrapErr(err)
	}
	return a, wrapErr(tx.Commit(ctx))
}

func (p *Postgres) DeleteAdsenseAd(ctx context.Context, id int64) (bool, error) {
	res, err := p.db.Exec(ctx, `DELETE FROM adsense WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// Coin rates

const coinRateColumns = `id, currency, rate::text, symbol, is_active, updated_at`

func scanCoinRate(row interface{ Scan(...any) error }) (domain.CoinRate, error) {
	var r domain.CoinRate
	err := row.Scan(&r.ID, &r.Currency, &r.Rate, &r.Symbol, &r.IsActive, &r.UpdatedAt)
	return r, wrapErr(err)
}

func (p *Postgres) GetCoinRates(ctx context.Context) ([]domain.CoinRate, error) {
	rows, err := p.db.Query(ctx, `SELECT `+coinRateColumns+` FROM coin_rates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.CoinRate, 0)
	for rows.Next() {
		r, err := scanCoinRate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *Postgres) GetCoinRateByCurrency(ctx context.Context, currency string) (domain.CoinRate, error) {
	return scanCoinRate(p.db.QueryRow(ctx, `SELECT `+coinRateColumns+` FROM coin_rates WHERE currency = $1`, currency))
}

func (p *Postgres) SetCoinRate(ctx context.Context, r domain.CoinRate) (domain.CoinRate, error) {
	err := p.db.QueryRow(ctx,
		`INSERT INTO coin_rates (currency, rate, symbol, is_active)
		 VALUES ($1, $2::numeric, $3, $4)
		 ON CONFLICT (currency) DO UPDATE SET rate = EXCLUDED.rate, symbol = EXCLUDED.symbol,
			is_active = EXCLUDED.is_active, updated_at = now()
		 RETURNING id, updated_at`,
		r.Currency, r.Rate, r.Symbol, r.IsActive,
	).Scan(&r.ID, &r.UpdatedAt)
	if err != nil {
		return domain.CoinRate{}, wrapErr(err)
	}
	return r, nil
}

func (p *Postgres) UpdateCoinRate(ctx context.Context, currency, rate string) (domain.CoinRate, error) {
	return scanCoinRate(p.db.QueryRow(ctx,
		`UPDATE coin_rates SET rate = $1::numeric, updated_at = now() WHERE currency = $2
		 RETURNING `+coinRateColumns, rate, currency))
}

// Commission settings

const commissionColumns = `id, platform, commission_percent::text, COALESCE(minimum_withdraw::text, ''), currency, is_active, updated_at`

func scanCommission(row interface{ Scan(...any) error }) (domain.CommissionSetting, error) {
	var s domain.CommissionSetting
	err := row.Scan(&s.ID, &s.Platform, &s.CommissionPercent, &s.MinimumWithdraw, &s.Currency, &s.IsActive, &s.UpdatedAt)
	return s, wrapErr(err)
}

func (p *Postgres) GetCommissionSettings(ctx context.Context) ([]domain.CommissionSetting, error) {
	rows, err := p.db.Query(ctx, `SELECT `+commissionColumns+` FROM commission_settings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.CommissionSetting, 0)
	for rows.Next() {
		s, err := scanCommission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *Postgres) GetCommissionSettingByPlatform(ctx context.Context, platform string) (domain.CommissionSetting, error) {
	return scanCommission(p.db.QueryRow(ctx,
		`SELECT `+commissionColumns+` FROM commission_settings WHERE platform = $1`, platform))
}

func (p *Postgres) SetCommissionSetting(ctx context.Context, s domain.CommissionSetting) (domain.CommissionSetting, error) {
	err := p.db.QueryRow(ctx,
		`INSERT INTO commission_settings (platform, commission_percent, minimum_withdraw, currency, is_active)
		 VALUES ($1, $2::numeric, NULLIF($3, '')::numeric, $4, $5)
		 ON CONFLICT (platform) DO UPDATE SET commission_percent = EXCLUDED.commission_percent,
			minimum_withdraw = EXCLUDED.minimum_withdraw, currency = EXCLUDED.currency,
			is_active = EXCLUDED.is_active, updated_at = now()
		 RETURNING id, updated_at`,
		s.Platform, s.CommissionPercent, s.MinimumWithdraw, s.Currency, s.IsActive,
	).Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		return domain.CommissionSetting{}, wrapErr(err)
	}
	return s, nil
}

func (p *Postgres) UpdateCommissionSetting(ctx context.Context, platform string, patch domain.CommissionSettingPatch) (domain.CommissionSetting, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return domain.CommissionSetting{}, err
	}
	defer tx.Rollback(ctx)

	s, err := scanCommission(tx.QueryRow(ctx,
		`SELECT `+commissionColumns+` FROM commission_settings WHERE platform = $1 FOR UPDATE`, platform))
	if err != nil {
		return domain.CommissionSetting{}, err
	}
	patch.Apply(&s)
	err = tx.QueryRow(ctx,
		`UPDATE commission_settings SET commission_percent=$1::numeric,
			minimum_withdraw=NULLIF($2, '')::numeric, currency=$3, is_active=$4, updated_at=now()
		 WHERE platform=$5
		 RETURNING updated_at`,
		s.CommissionPercent, s.MinimumWithdraw, s.Currency, s.IsActive, platform,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return domain.CommissionSetting{}, wrapErr(err)
	}
	return s, wrapErr(tx.Commit(ctx))
}
