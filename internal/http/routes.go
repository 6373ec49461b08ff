package http

import (
	"time"

	"tokrecharge_api/internal/config"
	"tokrecharge_api/internal/http/handlers"
	"tokrecharge_api/internal/http/middleware"
	"tokrecharge_api/internal/service"
	"tokrecharge_api/internal/storage"
	"tokrecharge_api/internal/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the whole API surface onto the engine. The store and
// auth service are injected so tests can run against the in-memory store.
func RegisterRoutes(r *gin.Engine, store storage.Store, auth *service.AuthService, hub *ws.Hub, cfg *config.Config) {
	h := handlers.NewHandler(store, auth, hub)

	apiWindow := time.Duration(cfg.APIRateWindow) * time.Second
	authWindow := time.Duration(cfg.AuthRateWindow) * time.Second

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit("api", cfg.APIRateLimit, apiWindow))

	// Public endpoints
	api.GET("/site-settings", h.SiteSettings)
	api.GET("/tools", h.ListTools)
	api.GET("/tools/:slug", h.GetToolBySlug)
	api.GET("/countries", h.ListCountries)
	api.GET("/countries/:code", h.GetCountryByCode)
	api.GET("/gifts", h.ListGifts)
	api.GET("/blog", h.ListBlogPosts)
	api.GET("/blog/:slug", h.GetBlogPostBySlug)
	api.GET("/recharge-packages", h.ListRechargePackages)
	api.GET("/coin-rates", h.ListCoinRates)
	api.GET("/commission/:platform", h.GetCommission)
	api.GET("/ads/:location", h.ListAdsByLocation)
	api.POST("/track", h.Track)

	// Auth, with its own tighter limit on top of the API window
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", middleware.RedisRateLimit("auth", cfg.AuthRateLimit, authWindow), h.Login)
		authGroup.POST("/verify", middleware.RequireAuth(auth), h.Verify)
	}

	// Admin endpoints, bearer token required
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(auth))
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/dashboard/live", h.DashboardLive)

		admin.GET("/analytics/visitors", h.VisitorLogs)
		admin.GET("/analytics/countries", h.VisitorCountryStats)
		admin.GET("/analytics/pages", h.VisitorPageStats)

		admin.GET("/blog", h.ListBlogPostsAdmin)
		admin.GET("/blog/:id", h.GetBlogPostByID)
		admin.POST("/blog", h.CreateBlogPost)
		admin.PUT("/blog/:id", h.UpdateBlogPost)
		admin.DELETE("/blog/:id", h.DeleteBlogPost)

		admin.GET("/settings", h.ListSiteSettings)
		admin.PUT("/settings/:key", h.UpdateSiteSetting)

		admin.GET("/adsense", h.ListAdsenseAds)
		admin.POST("/adsense", h.CreateAdsenseAd)
		admin.PUT("/adsense/:id", h.UpdateAdsenseAd)
		admin.DELETE("/adsense/:id", h.DeleteAdsenseAd)

		admin.POST("/tools", h.CreateTool)
		admin.PUT("/tools/:id", h.UpdateTool)
		admin.DELETE("/tools/:id", h.DeleteTool)

		admin.POST("/countries", h.CreateCountry)
		admin.PUT("/countries/:id", h.UpdateCountry)
		admin.DELETE("/countries/:id", h.DeleteCountry)

		admin.POST("/gifts", h.CreateGift)
		admin.PUT("/gifts/:id", h.UpdateGift)
		admin.DELETE("/gifts/:id", h.DeleteGift)

		admin.POST("/recharge-packages", h.CreateRechargePackage)
		admin.PUT("/recharge-packages/:id", h.UpdateRechargePackage)
		admin.DELETE("/recharge-packages/:id", h.DeleteRechargePackage)

		admin.GET("/coin-rates", h.ListCoinRatesAdmin)
		admin.PUT("/coin-rates/:currency", h.UpdateCoinRate)

		admin.GET("/commission", h.ListCommissionSettings)
		admin.PUT("/commission/:platform", h.UpdateCommissionSetting)

		admin.POST("/upload", h.Upload)

		// User management is reserved for super admins
		users := admin.Group("/users")
		users.Use(middleware.RequireSuperAdmin())
		{
			users.GET("", h.ListAdminUsers)
			users.POST("", h.CreateAdminUser)
			users.PUT("/:id", h.UpdateAdminUser)
		}
	}
}
