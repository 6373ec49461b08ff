package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tokrecharge_api/internal/config"
	"tokrecharge_api/internal/db"
	apihttp "tokrecharge_api/internal/http"
	"tokrecharge_api/internal/http/middleware"
	"tokrecharge_api/internal/logger"
	"tokrecharge_api/internal/service"
	"tokrecharge_api/internal/storage"
	"tokrecharge_api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	// DATABASE_URL selects Postgres; without it the seeded in-memory store
	// serves the whole API, which is how local development runs.
	var store storage.Store
	if cfg.DatabaseURL != "" {
		pool := db.Connect(cfg.DatabaseURL)
		defer pool.Close()

		pg := storage.NewPostgres(pool)
		if err := pg.Migrate(context.Background()); err != nil {
			logger.Fatal("migration failed", "error", err)
		}
		store = pg
		logger.Info("using postgres store")
	} else {
		store = storage.NewSeededMemory()
		logger.Info("using in-memory store")
	}

	auth := service.NewAuthService(store, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	hub := ws.NewHub()

	r := gin.Default()

	// CORS for the admin UI served from another domain
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	r.Use(middleware.Metrics())

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apihttp.RegisterRoutes(r, store, auth, hub, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
