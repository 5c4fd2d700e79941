package products

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListItem is a product row plus availability derived at read time.
// Rental expiry is never written back; it is recomputed per request.
type ListItem struct {
	Product
	IsRented bool `json:"is_rented"`
	DaysLeft *int `json:"days_left,omitempty"`
}

// List returns sale or rental listings, newest first, narrowed by the
// optional category and q query parameters.
func (h *Handler) List(c echo.Context) error {
	listingType := c.QueryParam("type")
	if listingType == "" {
		listingType = TypeSell
	}
	if listingType != TypeSell && listingType != TypeRent {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type must be sell or rent"})
	}

	items, err := h.store.ListByType(c.Request().Context(), listingType)
	if err != nil {
		c.Logger().Errorf("list products: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch products"})
	}

	items = Filter(items, c.QueryParam("category"), c.QueryParam("q"))

	now := h.now()
	out := make([]ListItem, 0, len(items))
	for _, p := range items {
		item := ListItem{Product: p}
		if p.Type == TypeRent && p.DurationDays != nil && IsRented(p.RentedAt, *p.DurationDays, now) {
			item.IsRented = true
			left := DaysLeft(*p.RentedAt, *p.DurationDays, now)
			item.DaysLeft = &left
		}
		out = append(out, item)
	}

	return c.JSON(http.StatusOK, echo.Map{"products": out})
}
