package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implements Store on a pgx pool. Selected when DATABASE_URL is set;
// uniqueness is enforced by the schema's unique constraints and surfaces as
// ErrDuplicate.
type Postgres struct {
	db *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// wrapErr maps driver errors onto the store's sentinel errors.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

// Migrate creates the schema when it does not exist yet. Idempotent.
func (p *Postgres) Migrate(ctx context.Context) error {
	_, err := p.db.Exec(ctx, schemaDDL)
	return err
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS tools (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	icon TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS countries (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	code TEXT NOT NULL UNIQUE,
	currency TEXT NOT NULL,
	coin_rate NUMERIC(10,6) NOT NULL,
	flag TEXT NOT NULL DEFAULT '',
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS gifts (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	coin_cost INTEGER NOT NULL,
	diamond_value INTEGER NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	rarity TEXT NOT NULL DEFAULT '',
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS blog_posts (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	excerpt TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL DEFAULT '',
	meta_title TEXT NOT NULL DEFAULT '',
	meta_description TEXT NOT NULL DEFAULT '',
	keywords TEXT NOT NULL DEFAULT '',
	focus_keyword TEXT NOT NULL DEFAULT '',
	canonical_url TEXT NOT NULL DEFAULT '',
	og_image TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT 'general',
	tags TEXT NOT NULL DEFAULT '',
	featured_image TEXT NOT NULL DEFAULT '',
	cover_image TEXT NOT NULL DEFAULT '',
	featured BOOLEAN NOT NULL DEFAULT FALSE,
	status TEXT NOT NULL DEFAULT 'draft',
	reading_time INTEGER NOT NULL DEFAULT 0,
	word_count INTEGER NOT NULL DEFAULT 0,
	flesch_score TEXT NOT NULL DEFAULT '',
	headings JSONB,
	scheduled_at TIMESTAMPTZ,
	published_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS recharge_packages (
	id BIGSERIAL PRIMARY KEY,
	country_id BIGINT NOT NULL DEFAULT 0,
	coins INTEGER NOT NULL,
	price NUMERIC(10,2) NOT NULL,
	currency TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS admin_users (
	id BIGSERIAL PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'admin',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	last_login TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS site_settings (
	id BIGSERIAL PRIMARY KEY,
	key VARCHAR(100) NOT NULL UNIQUE,
	value TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL DEFAULT 'text',
	description TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS visitor_logs (
	id BIGSERIAL PRIMARY KEY,
	ip_address VARCHAR(45) NOT NULL,
	country TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	user_agent TEXT NOT NULL DEFAULT '',
	referer TEXT NOT NULL DEFAULT '',
	page TEXT NOT NULL,
	visited_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS adsense (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	ad_code TEXT NOT NULL,
	location TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS coin_rates (
	id BIGSERIAL PRIMARY KEY,
	currency TEXT NOT NULL UNIQUE,
	rate NUMERIC(10,6) NOT NULL,
	symbol TEXT NOT NULL DEFAULT '',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS commission_settings (
	id BIGSERIAL PRIMARY KEY,
	platform TEXT NOT NULL UNIQUE,
	commission_percent NUMERIC(5,2) NOT NULL,
	minimum_withdraw NUMERIC(10,2),
	currency TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
