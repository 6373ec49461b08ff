package storage

import (
	"context"
	"testing"
	"time"

	"tokrecharge_api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSeededMemoryCatalog(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	tools, err := m.GetTools(ctx)
	require.NoError(t, err)
	assert.Len(t, tools, 6)

	countries, err := m.GetCountries(ctx)
	require.NoError(t, err)
	assert.Len(t, countries, 5)

	gifts, err := m.GetGifts(ctx)
	require.NoError(t, err)
	assert.Len(t, gifts, 8)

	packages, err := m.GetRechargePackages(ctx)
	require.NoError(t, err)
	assert.Len(t, packages, 9)

	admin, err := m.GetAdminUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, admin.Role)
	assert.True(t, admin.IsActive)

	byEmail, err := m.GetAdminUserByEmail(ctx, "admin@tokrecharge.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, byEmail.ID)
}

func TestCreateToolDuplicateSlug(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	_, err := m.CreateTool(ctx, domain.Tool{Name: "Other Calculator", Slug: "coin-calculator"})
	assert.ErrorIs(t, err, ErrDuplicate)

	created, err := m.CreateTool(ctx, domain.Tool{Name: "Fresh", Slug: "fresh-tool", IsActive: true})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// renaming an existing tool onto a taken slug is rejected too
	_, err = m.UpdateTool(ctx, created.ID, domain.ToolPatch{Slug: strPtr("coin-calculator")})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.UpdateTool(ctx, 42, domain.ToolPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.UpdateGift(ctx, 42, domain.GiftPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.UpdateBlogPost(ctx, 42, domain.BlogPostPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReportsExistence(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	existed, err := m.DeleteTool(ctx, 1)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = m.DeleteTool(ctx, 1)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestPatchLeavesOtherFieldsAlone(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	before, err := m.GetCountryByCode(ctx, "IN")
	require.NoError(t, err)

	after, err := m.UpdateCountry(ctx, before.ID, domain.CountryPatch{CoinRate: strPtr("1.300000")})
	require.NoError(t, err)
	assert.Equal(t, "1.300000", after.CoinRate)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Currency, after.Currency)
	assert.Equal(t, before.Flag, after.Flag)
}

func TestPublishedBlogFilter(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	all, err := m.GetBlogPosts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	published, err := m.GetPublishedBlogPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, published, 2)
	for _, p := range published {
		assert.Equal(t, domain.BlogStatusPublished, p.Status)
	}
}

func TestPublishedAtSetOnce(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	post, err := m.CreateBlogPost(ctx, domain.BlogPost{
		Title:   "Draft",
		Slug:    "draft-post",
		Content: "body",
		Status:  domain.BlogStatusDraft,
	})
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	published, err := m.UpdateBlogPost(ctx, post.ID, domain.BlogPostPatch{
		Status: strPtr(domain.BlogStatusPublished),
	})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	// unpublish then publish again: the original timestamp survives
	_, err = m.UpdateBlogPost(ctx, post.ID, domain.BlogPostPatch{
		Status: strPtr(domain.BlogStatusDraft),
	})
	require.NoError(t, err)

	again, err := m.UpdateBlogPost(ctx, post.ID, domain.BlogPostPatch{
		Status: strPtr(domain.BlogStatusPublished),
	})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.Equal(t, first, *again.PublishedAt)
}

func TestSiteSettingUpsertKeepsID(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	before, err := m.GetSiteSettingByKey(ctx, "title")
	require.NoError(t, err)

	updated, err := m.SetSiteSetting(ctx, domain.SiteSetting{Key: "title", Value: "New Title"})
	require.NoError(t, err)
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, "New Title", updated.Value)

	_, err = m.UpdateSiteSetting(ctx, "no-such-key", "v")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCoinRateUpsertKeyedOnCurrency(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	before, err := m.GetCoinRateByCurrency(ctx, "USD")
	require.NoError(t, err)

	updated, err := m.SetCoinRate(ctx, domain.CoinRate{Currency: "USD", Rate: "0.016000", Symbol: "$", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, "0.016000", updated.Rate)

	fresh, err := m.SetCoinRate(ctx, domain.CoinRate{Currency: "AUD", Rate: "0.022000", Symbol: "A$", IsActive: true})
	require.NoError(t, err)
	assert.NotEqual(t, before.ID, fresh.ID)

	_, err = m.UpdateCoinRate(ctx, "JPY", "2.100000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateAdminUsername(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	_, err := m.CreateAdminUser(ctx, domain.AdminUser{
		Username: "admin", Email: "other@tokrecharge.com", PasswordHash: "x", Role: domain.RoleAdmin, IsActive: true,
	})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = m.CreateAdminUser(ctx, domain.AdminUser{
		Username: "editor", Email: "admin@tokrecharge.com", PasswordHash: "x", Role: domain.RoleAdmin, IsActive: true,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAdsenseLocationFilterActiveOnly(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.CreateAdsenseAd(ctx, domain.Adsense{Name: "a", AdCode: "<x>", Location: "header", IsActive: true})
	require.NoError(t, err)
	_, err = m.CreateAdsenseAd(ctx, domain.Adsense{Name: "b", AdCode: "<y>", Location: "header", IsActive: false})
	require.NoError(t, err)
	_, err = m.CreateAdsenseAd(ctx, domain.Adsense{Name: "c", AdCode: "<z>", Location: "footer", IsActive: true})
	require.NoError(t, err)

	ads, err := m.GetAdsenseAdsByLocation(ctx, "header")
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "a", ads[0].Name)
}

func TestVisitorAnalytics(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	day1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	visits := []domain.VisitorLog{
		{Country: "IN", Page: "/coin-calculator", VisitedAt: day1},
		{Country: "IN", Page: "/coin-calculator", VisitedAt: day1.Add(time.Hour)},
		{Country: "IN", Page: "/gift-value", VisitedAt: day1.Add(2 * time.Hour)},
		{Country: "US", Page: "/coin-calculator", VisitedAt: day2},
		{Country: "IN", Page: "/coin-calculator", VisitedAt: day2.Add(time.Hour)},
		{Country: "IN", Page: "/coin-calculator", VisitedAt: day2.Add(2 * time.Hour)},
		{Country: "US", Page: "/gift-value", VisitedAt: day2.Add(3 * time.Hour)},
	}
	for _, v := range visits {
		_, err := m.CreateVisitorLog(ctx, v)
		require.NoError(t, err)
	}

	countries, err := m.GetVisitorStatsByCountry(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, domain.CountryStat{Country: "IN", Count: 5}, countries[0])
	assert.Equal(t, domain.CountryStat{Country: "US", Count: 2}, countries[1])

	pages, err := m.GetVisitorStatsByPage(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, domain.PageStat{Page: "/coin-calculator", Count: 5}, pages[0])
	assert.Equal(t, domain.PageStat{Page: "/gift-value", Count: 2}, pages[1])

	daily, err := m.GetDailyVisitorCount(ctx)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, domain.DailyCount{Date: "2025-01-01", Count: 3}, daily[0])
	assert.Equal(t, domain.DailyCount{Date: "2025-01-02", Count: 4}, daily[1])
}

func TestVisitorLogsNewestFirstWithLimit(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := m.CreateVisitorLog(ctx, domain.VisitorLog{
			Page:      "/",
			Country:   "US",
			VisitedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	logs, err := m.GetVisitorLogs(ctx, 3)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, base.Add(4*time.Minute), logs[0].VisitedAt)
	assert.Equal(t, base.Add(2*time.Minute), logs[2].VisitedAt)
}

func TestGiftCategoryFilter(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	basic, err := m.GetGiftsByCategory(ctx, "Basic")
	require.NoError(t, err)
	assert.Len(t, basic, 5)
	for _, g := range basic {
		assert.Equal(t, "Basic", g.Category)
	}

	none, err := m.GetGiftsByCategory(ctx, "no-such-category")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRechargePackagesByCountry(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	india, err := m.GetRechargePackagesByCountry(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, india, 3)
	for _, p := range india {
		assert.EqualValues(t, 2, p.CountryID)
	}
}

func TestCommissionSettingPatch(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	updated, err := m.UpdateCommissionSetting(ctx, "tiktok", domain.CommissionSettingPatch{
		CommissionPercent: strPtr("45.00"),
		IsActive:          boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "45.00", updated.CommissionPercent)
	assert.Equal(t, "10.00", updated.MinimumWithdraw)

	_, err = m.UpdateCommissionSetting(ctx, "youtube", domain.CommissionSettingPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	// upsert keyed on platform: existing row keeps its ID
	upserted, err := m.SetCommissionSetting(ctx, domain.CommissionSetting{
		Platform: "tiktok", CommissionPercent: "40.00", MinimumWithdraw: "20.00", Currency: "USD", IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, updated.ID, upserted.ID)
	assert.Equal(t, "40.00", upserted.CommissionPercent)
}
