package stats

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campus-exchange/campusmarket/internal/db"
)

// GET /stats
func Overview(c echo.Context) error {
	ctx := context.Background()

	var products, forSale, forRent, services, booked int

	_ = db.Conn.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&products)
	_ = db.Conn.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE type = 'sell'`).Scan(&forSale)
	_ = db.Conn.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE type = 'rent'`).Scan(&forRent)
	_ = db.Conn.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&services)
	_ = db.Conn.QueryRow(ctx, `SELECT COUNT(*) FROM services WHERE is_available = FALSE`).Scan(&booked)

	return c.JSON(http.StatusOK, echo.Map{
		"products":        products,
		"for_sale":        forSale,
		"for_rent":        forRent,
		"services":        services,
		"booked_services": booked,
	})
}
