package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // CLUB_TIMEZONE must resolve on slim images

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"clubsocios_backend/internals/configs"
	database "clubsocios_backend/internals/databases"
	helper "clubsocios_backend/internals/helpers"
	helperOSS "clubsocios_backend/internals/helpers/oss"
	middlewares "clubsocios_backend/internals/middlewares"
	routes "clubsocios_backend/internals/route"
	"clubsocios_backend/internals/seeds"
)

func main() {
	configs.InitLogger()
	configs.LoadEnv()

	if err := database.ConnectDB(); err != nil {
		slog.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	database.TunePool()

	if configs.GetEnvBool("DB_RUN_MIGRATIONS", true) {
		if err := database.RunMigrations(database.DB, routes.AllModels()...); err != nil {
			slog.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}
	database.WarmUpQueries()

	if configs.RunSeeds {
		if err := seeds.RunAllSeeds(context.Background(), database.DB); err != nil {
			slog.Error("seeding failed", "err", err)
			os.Exit(1)
		}
	}

	blob, err := helperOSS.NewBlobServiceFromEnv(context.Background(), "socios")
	if err != nil {
		// members can still be managed without photos
		slog.Warn("photo storage unavailable, uploads disabled", "err", err)
		blob = helperOSS.DisabledBlobService{}
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		BodyLimit:               8 * 1024 * 1024,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app)
	routes.SetupRoutes(app, database.DB, blob)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		slog.Info("listening", "port", configs.Port)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := database.Close(); err != nil {
		slog.Warn("closing database", "err", err)
	}
}
