package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"tokrecharge_api/internal/domain"

	"github.com/gin-gonic/gin"
)

// SiteSettings flattens the settings rows into the object the frontend
// injects at render time. The three branding keys fall back to defaults so
// a fresh install still renders.
func (h *Handler) SiteSettings(c *gin.Context) {
	settings, err := h.Store.GetSiteSettings(c.Request.Context())
	if err != nil {
		storeError(c, err, "site settings")
		return
	}

	flat := make(map[string]string, len(settings))
	for _, s := range settings {
		flat[s.Key] = s.Value
	}

	out := gin.H{
		"title":           withDefault(flat["title"], "TokRecharge.com"),
		"metaTitle":       withDefault(flat["metaTitle"], "TikTok Coin Calculator & Tools"),
		"metaDescription": withDefault(flat["metaDescription"], "Calculate TikTok coin values and more"),
	}
	for _, key := range []string{"logo", "favicon", "googleAnalytics", "googleSearchConsole", "facebookPixel", "verificationMeta"} {
		if v := flat[key]; v != "" {
			out[key] = v
		}
	}

	c.JSON(http.StatusOK, out)
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func (h *Handler) ListTools(c *gin.Context) {
	tools, err := h.Store.GetTools(c.Request.Context())
	if err != nil {
		storeError(c, err, "tools")
		return
	}
	c.JSON(http.StatusOK, tools)
}

func (h *Handler) GetToolBySlug(c *gin.Context) {
	tool, err := h.Store.GetToolBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		storeError(c, err, "tool")
		return
	}
	c.JSON(http.StatusOK, tool)
}

func (h *Handler) ListCountries(c *gin.Context) {
	countries, err := h.Store.GetCountries(c.Request.Context())
	if err != nil {
		storeError(c, err, "countries")
		return
	}
	c.JSON(http.StatusOK, countries)
}

func (h *Handler) GetCountryByCode(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	country, err := h.Store.GetCountryByCode(c.Request.Context(), code)
	if err != nil {
		storeError(c, err, "country")
		return
	}
	c.JSON(http.StatusOK, country)
}

// ListGifts returns the full catalog, or one category when ?category= is set.
func (h *Handler) ListGifts(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		gifts []domain.Gift
		err   error
	)
	if category := c.Query("category"); category != "" {
		gifts, err = h.Store.GetGiftsByCategory(ctx, category)
	} else {
		gifts, err = h.Store.GetGifts(ctx)
	}
	if err != nil {
		storeError(c, err, "gifts")
		return
	}
	c.JSON(http.StatusOK, gifts)
}

// ListBlogPosts is the public feed: published posts only.
func (h *Handler) ListBlogPosts(c *gin.Context) {
	posts, err := h.Store.GetPublishedBlogPosts(c.Request.Context())
	if err != nil {
		storeError(c, err, "blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBlogPostBySlug hides drafts and scheduled posts behind a 404 so slugs
// cannot be probed before publication.
func (h *Handler) GetBlogPostBySlug(c *gin.Context) {
	post, err := h.Store.GetBlogPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		storeError(c, err, "blog post")
		return
	}
	if post.Status != domain.BlogStatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) ListRechargePackages(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		packages []domain.RechargePackage
		err      error
	)
	if raw := c.Query("countryId"); raw != "" {
		countryID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid countryId"})
			return
		}
		packages, err = h.Store.GetRechargePackagesByCountry(ctx, countryID)
	} else {
		packages, err = h.Store.GetRechargePackages(ctx)
	}
	if err != nil {
		storeError(c, err, "recharge packages")
		return
	}
	c.JSON(http.StatusOK, packages)
}

// ListCoinRates returns all rates, or a single rate object when ?currency=
// is given.
func (h *Handler) ListCoinRates(c *gin.Context) {
	ctx := c.Request.Context()

	if currency := c.Query("currency"); currency != "" {
		rate, err := h.Store.GetCoinRateByCurrency(ctx, currency)
		if err != nil {
			storeError(c, err, "coin rate")
			return
		}
		c.JSON(http.StatusOK, rate)
		return
	}

	rates, err := h.Store.GetCoinRates(ctx)
	if err != nil {
		storeError(c, err, "coin rates")
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (h *Handler) GetCommission(c *gin.Context) {
	setting, err := h.Store.GetCommissionSettingByPlatform(c.Request.Context(), c.Param("platform"))
	if err != nil {
		storeError(c, err, "commission setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}

// ListAdsByLocation returns the active ads for one placement.
func (h *Handler) ListAdsByLocation(c *gin.Context) {
	ads, err := h.Store.GetAdsenseAdsByLocation(c.Request.Context(), c.Param("location"))
	if err != nil {
		storeError(c, err, "ads")
		return
	}
	c.JSON(http.StatusOK, ads)
}

type trackRequest struct {
	Page    string `json:"page" binding:"required"`
	Country string `json:"country"`
	City    string `json:"city"`
	Referer string `json:"referer"`
}

// Track records one page view. IP and user agent come from the request, not
// the body. New visits are pushed to connected dashboard sockets.
func (h *Handler) Track(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	log, err := h.Store.CreateVisitorLog(c.Request.Context(), domain.VisitorLog{
		IPAddress: c.ClientIP(),
		Country:   req.Country,
		City:      req.City,
		UserAgent: c.Request.UserAgent(),
		Referer:   req.Referer,
		Page:      req.Page,
	})
	if err != nil {
		storeError(c, err, "visitor log")
		return
	}

	if h.Hub != nil {
		h.Hub.Broadcast("visitor", log)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
