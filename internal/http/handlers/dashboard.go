package handlers

import (
	"net/http"
	"strconv"

	"tokrecharge_api/internal/logger"
	"tokrecharge_api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Dashboard assembles the admin landing page payload: headline counts, the
// ten most recent visits and the top-N analytics slices.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	tools, err := h.Store.GetTools(ctx)
	if err != nil {
		storeError(c, err, "dashboard")
		return
	}
	countries, err := h.Store.GetCountries(ctx)
	if err != nil {
		storeError(c, err, "dashboard")
		return
	}
	posts, err := h.Store.GetBlogPosts(ctx)
	if err != nil {
		storeError(c, err, "dashboard")
		return
	}
	recentVisitors, err := h.Store.GetVisitorLogs(ctx, 100)
	if err != nil {
		storeError(c, err, "dashboard")
		return
	}
	countryStats, err := h.Store.GetVisitorStatsByCountry(ctx)
	if err != nil {
		storeError(c, err, "dashboard")
		return
	}
	pageStats, err := h.Store.GetVisitorStatsByPage(ctx)
	if err != nil {
		storeError(c, err, "dashboard")
		return
	}
	dailyStats, err := h.Store.GetDailyVisitorCount(ctx)
	if err != nil {
		storeError(c, err, "dashboard")
		return
	}

	if len(countryStats) > 5 {
		countryStats = countryStats[:5]
	}
	if len(pageStats) > 5 {
		pageStats = pageStats[:5]
	}
	// daily counts are ascending by date, keep the last week
	if len(dailyStats) > 7 {
		dailyStats = dailyStats[len(dailyStats)-7:]
	}
	recent := recentVisitors
	if len(recent) > 10 {
		recent = recent[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"totalTools":     len(tools),
			"totalCountries": len(countries),
			"totalBlogPosts": len(posts),
			"totalVisitors":  len(recentVisitors),
		},
		"recentVisitors": recent,
		"analytics": gin.H{
			"topCountries":  countryStats,
			"topPages":      pageStats,
			"dailyVisitors": dailyStats,
		},
	})
}

func (h *Handler) VisitorLogs(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	visitors, err := h.Store.GetVisitorLogs(c.Request.Context(), limit)
	if err != nil {
		storeError(c, err, "visitor logs")
		return
	}
	c.JSON(http.StatusOK, visitors)
}

func (h *Handler) VisitorCountryStats(c *gin.Context) {
	stats, err := h.Store.GetVisitorStatsByCountry(c.Request.Context())
	if err != nil {
		storeError(c, err, "country stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) VisitorPageStats(c *gin.Context) {
	stats, err := h.Store.GetVisitorStatsByPage(c.Request.Context())
	if err != nil {
		storeError(c, err, "page stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// token auth already ran; the admin UI may be served from another origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// DashboardLive upgrades to a websocket and streams visitor events until the
// peer disconnects.
func (h *Handler) DashboardLive(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	client := ws.NewClient(conn, h.Hub)
	client.Run()
}
