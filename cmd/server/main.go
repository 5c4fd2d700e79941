package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/campus-exchange/campusmarket/internal/config"
	"github.com/campus-exchange/campusmarket/internal/db"
	"github.com/campus-exchange/campusmarket/internal/products"
	"github.com/campus-exchange/campusmarket/internal/services"
	"github.com/campus-exchange/campusmarket/internal/stats"
	"github.com/campus-exchange/campusmarket/internal/validation"
)

func main() {
	cfg := config.Load()

	// Initialize database connection
	db.Init(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	// Basic middleware
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// Health and root routes
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": "campusmarket"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/ready", func(c echo.Context) error {
		if db.Conn == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "db not initialized"})
		}
		if err := db.Conn.Ping(context.Background()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "db unreachable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
	})

	// Product listings
	ph := products.NewHandler(products.NewStore())
	e.POST("/products", ph.Create)
	e.GET("/products", ph.List)
	e.GET("/products/categories", ph.Categories)
	e.POST("/products/:id/purchase", ph.Purchase)
	e.POST("/products/:id/rent", ph.Rent)

	// Service listings and calendar
	sh := services.NewHandler(services.NewStore())
	e.POST("/services", sh.Create)
	e.GET("/services", sh.List)
	e.GET("/services/calendar", sh.Calendar)
	e.GET("/services/categories", sh.Categories)

	e.GET("/stats", stats.Overview)

	// Start server
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
