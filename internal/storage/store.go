package storage

import (
	"context"
	"errors"

	"tokrecharge_api/internal/domain"
)

var (
	// ErrNotFound is returned by lookups and writes against a missing record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a create would reuse a unique natural key
	// (slug, country code, currency, platform, username, email).
	ErrDuplicate = errors.New("duplicate key")
)

// Store is the persistence contract shared by the in-memory and Postgres
// implementations. Update methods apply patches field-by-field and never
// create; Delete reports whether a record existed.
type Store interface {
	// Tools
	GetTools(ctx context.Context) ([]domain.Tool, error)
	GetToolBySlug(ctx context.Context, slug string) (domain.Tool, error)
	CreateTool(ctx context.Context, t domain.Tool) (domain.Tool, error)
	UpdateTool(ctx context.Context, id int64, p domain.ToolPatch) (domain.Tool, error)
	DeleteTool(ctx context.Context, id int64) (bool, error)

	// Countries
	GetCountries(ctx context.Context) ([]domain.Country, error)
	GetCountryByCode(ctx context.Context, code string) (domain.Country, error)
	CreateCountry(ctx context.Context, c domain.Country) (domain.Country, error)
	UpdateCountry(ctx context.Context, id int64, p domain.CountryPatch) (domain.Country, error)
	DeleteCountry(ctx context.Context, id int64) (bool, error)

	// Gifts
	GetGifts(ctx context.Context) ([]domain.Gift, error)
	GetGiftsByCategory(ctx context.Context, category string) ([]domain.Gift, error)
	CreateGift(ctx context.Context, g domain.Gift) (domain.Gift, error)
	UpdateGift(ctx context.Context, id int64, p domain.GiftPatch) (domain.Gift, error)
	DeleteGift(ctx context.Context, id int64) (bool, error)

	// Blog posts
	GetBlogPosts(ctx context.Context) ([]domain.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (domain.BlogPost, error)
	GetBlogPostByID(ctx context.Context, id int64) (domain.BlogPost, error)
	CreateBlogPost(ctx context.Context, p domain.BlogPost) (domain.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id int64, p domain.BlogPostPatch) (domain.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id int64) (bool, error)
	GetPublishedBlogPosts(ctx context.Context) ([]domain.BlogPost, error)

	// Recharge packages
	GetRechargePackages(ctx context.Context) ([]domain.RechargePackage, error)
	GetRechargePackagesByCountry(ctx context.Context, countryID int64) ([]domain.RechargePackage, error)
	CreateRechargePackage(ctx context.Context, p domain.RechargePackage) (domain.RechargePackage, error)
	UpdateRechargePackage(ctx context.Context, id int64, p domain.RechargePackagePatch) (domain.RechargePackage, error)
	DeleteRechargePackage(ctx context.Context, id int64) (bool, error)

	// Admin users
	GetAdminUsers(ctx context.Context) ([]domain.AdminUser, error)
	GetAdminUserByUsername(ctx context.Context, username string) (domain.AdminUser, error)
	GetAdminUserByEmail(ctx context.Context, email string) (domain.AdminUser, error)
	CreateAdminUser(ctx context.Context, u domain.AdminUser) (domain.AdminUser, error)
	UpdateAdminUser(ctx context.Context, id int64, p domain.AdminUserPatch) (domain.AdminUser, error)
	UpdateAdminUserLastLogin(ctx context.Context, id int64) error

	// Site settings
	GetSiteSettings(ctx context.Context) ([]domain.SiteSetting, error)
	GetSiteSettingByKey(ctx context.Context, key string) (domain.SiteSetting, error)
	SetSiteSetting(ctx context.Context, s domain.SiteSetting) (domain.SiteSetting, error)
	UpdateSiteSetting(ctx context.Context, key, value string) (domain.SiteSetting, error)

	// Visitor logs
	GetVisitorLogs(ctx context.Context, limit int) ([]domain.VisitorLog, error)
	CreateVisitorLog(ctx context.Context, v domain.VisitorLog) (domain.VisitorLog, error)
	GetVisitorStatsByCountry(ctx context.Context) ([]domain.CountryStat, error)
	GetVisitorStatsByPage(ctx context.Context) ([]domain.PageStat, error)
	GetDailyVisitorCount(ctx context.Context) ([]domain.DailyCount, error)

	// Adsense
	GetAdsenseAds(ctx context.Context) ([]domain.Adsense, error)
	GetAdsenseAdsByLocation(ctx context.Context, location string) ([]domain.Adsense, error)
	CreateAdsenseAd(ctx context.Context, a domain.Adsense) (domain.Adsense, error)
	UpdateAdsenseAd(ctx context.Context, id int64, p domain.AdsensePatch) (domain.Adsense, error)
	DeleteAdsenseAd(ctx context.Context, id int64) (bool, error)

	// Coin rates
	GetCoinRates(ctx context.Context) ([]domain.CoinRate, error)
	GetCoinRateByCurrency(ctx context.Context, currency string) (domain.CoinRate, error)
	SetCoinRate(ctx context.Context, r domain.CoinRate) (domain.CoinRate, error)
	UpdateCoinRate(ctx context.Context, currency, rate string) (domain.CoinRate, error)

	// Commission settings
	GetCommissionSettings(ctx context.Context) ([]domain.CommissionSetting, error)
	GetCommissionSettingByPlatform(ctx context.Context, platform string) (domain.CommissionSetting, error)
	SetCommissionSetting(ctx context.Context, s domain.CommissionSetting) (domain.CommissionSetting, error)
	UpdateCommissionSetting(ctx context.Context, platform string, p domain.CommissionSettingPatch) (domain.CommissionSetting, error)
}
