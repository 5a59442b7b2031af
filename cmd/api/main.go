package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrack-app/fintrack-backend/internal/config"
	"github.com/fintrack-app/fintrack-backend/internal/dashboard"
	"github.com/fintrack-app/fintrack-backend/internal/entry"
	"github.com/fintrack-app/fintrack-backend/internal/expense"
	apphttp "github.com/fintrack-app/fintrack-backend/internal/http"
	"github.com/fintrack-app/fintrack-backend/internal/income"
	"github.com/fintrack-app/fintrack-backend/internal/reports"
	"github.com/fintrack-app/fintrack-backend/internal/router"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("create pgx pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("ping database", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"message": message,
				"error":   err.Error(),
			})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	store := entry.NewStore(pool)

	r := &router.Router{
		AuthHandler: &apphttp.AuthHandler{
			DB:       pool,
			Secret:   []byte(cfg.JWTSecret),
			TokenTTL: cfg.TokenTTL,
		},
		IncomeHandler:    income.NewHandler(store),
		ExpenseHandler:   expense.NewHandler(store),
		DashboardHandler: dashboard.NewHandler(dashboard.NewService(store)),
		ReportsHandler:   reports.NewHandler(pool),
		AuthMW:           router.JWTMiddleware([]byte(cfg.JWTSecret)),
		AuthRateLimit:    router.RateLimitAuth(cfg.AuthRateMax, cfg.AuthRateWindow),
	}
	r.RegisterRoutes(app)

	slog.Info("listening", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		slog.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}
