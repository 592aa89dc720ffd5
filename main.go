package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"halaqat_backend/internals/configs"
	database "halaqat_backend/internals/databases"
	middlewares "halaqat_backend/internals/middlewares"
	loggerMiddleware "halaqat_backend/internals/middlewares/logger"
	routes "halaqat_backend/internals/route"
	"halaqat_backend/internals/seeds"
	"halaqat_backend/internals/views"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Views:                 views.Engine(),
		ViewsLayout:           views.Layout,
		ErrorHandler:          routes.ErrorHandler,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(middlewares.RequestID())
	app.Use(middlewares.RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(middlewares.CorsMiddleware(cfg.CorsOrigins))
	app.Use(middlewares.GlobalRateLimiter(cfg.RateLimitPerMinute))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔌 DB connect + pool + schema + warm-up
	st, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ DB connect gagal: %v", err)
	}
	database.TunePool(st)
	database.Bootstrap(context.Background(), st)
	database.WarmUpQueries(st)

	if cfg.SeedDemo {
		if err := seeds.RunAllSeeds(context.Background(), st.DB); err != nil {
			log.Printf("[WARN] seed demo gagal: %v", err)
		}
	}

	// ✅ Routes
	routes.SetupRoutes(app, st, cfg)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := st.Close(); err != nil {
		log.Printf("db close err: %v", err)
	}
}
