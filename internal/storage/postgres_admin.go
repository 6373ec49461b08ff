package storage

import (
	"context"

	"tokrecharge_api/internal/domain"
)

const adminColumns = `id, username, email, password_hash, role, is_active, last_login, created_at, updated_at`

func scanAdminUser(row interface{ Scan(...any) error }) (domain.AdminUser, error) {
	var u domain.AdminUser
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive,
		&u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	return u, wrapErr(err)
}

func (p *Postgres) GetAdminUsers(ctx context.Context) ([]domain.AdminUser, error) {
	rows, err := p.db.Query(ctx, `SELECT `+adminColumns+` FROM admin_users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.AdminUser, 0)
	for rows.Next() {
		u, err := scanAdminUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (p *Postgres) GetAdminUserByUsername(ctx context.Context, username string) (domain.AdminUser, error) {
	return scanAdminUser(p.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin_users WHERE username = $1`, username))
}

func (p *Postgres) GetAdminUserByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	return scanAdminUser(p.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin_users WHERE email = $1`, email))
}

func (p *Postgres) CreateAdminUser(ctx context.Context, u domain.AdminUser) (domain.AdminUser, error) {
	err := p.db.QueryRow(ctx,
		`INSERT INTO admin_users (username, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		u.Username, u.Email, u.PasswordHash, u.Role, u.IsActive,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.AdminUser{}, wrapErr(err)
	}
	u.LastLogin = nil
	return u, nil
}

func (p *Postgres) UpdateAdminUser(ctx context.Context, id int64, patch domain.AdminUserPatch) (domain.AdminUser, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return domain.AdminUser{}, err
	}
	defer tx.Rollback(ctx)

	u, err := scanAdminUser(tx.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin_users WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return domain.AdminUser{}, err
	}
	patch.Apply(&u)
	err = tx.QueryRow(ctx,
		`UPDATE admin_users SET email=$1, role=$2, is_active=$3, updated_at=now() WHERE id=$4
		 RETURNING updated_at`,
		u.Email, u.Role, u.IsActive, id,
	).Scan(&u.UpdatedAt)
	if err != nil {
		return domain.AdminUser{}, wrapErr(err)
	}
	return u, wrapErr(tx.Commit(ctx))
}

func (p *Postgres) UpdateAdminUserLastLogin(ctx context.Context, id int64) error {
	res, err := p.db.Exec(ctx, `UPDATE admin_users SET last_login = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Site settings

const settingColumns = `id, key, value, type, description, updated_at`

func scanSetting(row interface{ Scan(...any) error }) (domain.SiteSetting, error) {
	var s domain.SiteSetting
	err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Type, &s.Description, &s.UpdatedAt)
	return s, wrapErr(err)
}

func (p *Postgres) GetSiteSettings(ctx context.Context) ([]domain.SiteSetting, error) {
	rows, err := p.db.Query(ctx, `SELECT `+settingColumns+` FROM site_settings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.SiteSetting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *Postgres) GetSiteSettingByKey(ctx context.Context, key string) (domain.SiteSetting, error) {
	return scanSetting(p.db.QueryRow(ctx, `SELECT `+settingColumns+` FROM site_settings WHERE key = $1`, key))
}

func (p *Postgres) SetSiteSetting(ctx context.Context, s domain.SiteSetting) (domain.SiteSetting, error) {
	err := p.db.QueryRow(ctx,
		`INSERT INTO site_settings (key, value, type, description)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, type = EXCLUDED.type,
			description = EXCLUDED.description, updated_at = now()
		 RETURNING id, updated_at`,
		s.Key, s.Value, s.Type, s.Description,
	).Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		return domain.SiteSetting{}, wrapErr(err)
	}
	return s, nil
}

func (p *Postgres) UpdateSiteSetting(ctx context.Context, key, value string) (domain.SiteSetting, error) {
	return scanSetting(p.db.QueryRow(ctx,
		`UPDATE site_settings SET value = $1, updated_at = now() WHERE key = $2
		 RETURNING `+settingColumns, value, key))
}
