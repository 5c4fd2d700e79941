package services

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// List returns upcoming services (today onwards), soonest first,
// narrowed by the optional category and q query parameters.
func (h *Handler) List(c echo.Context) error {
	today := h.now().Format(dateLayout)

	items, err := h.store.ListFrom(c.Request().Context(), today)
	if err != nil {
		c.Logger().Errorf("list services: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch services"})
	}

	items = Filter(items, c.QueryParam("category"), c.QueryParam("q"))

	return c.JSON(http.StatusOK, echo.Map{"services": items})
}

// Calendar returns every service grouped into per-date buckets for the
// calendar surface.
func (h *Handler) Calendar(c echo.Context) error {
	items, err := h.store.ListAll(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("calendar: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch services"})
	}

	return c.JSON(http.StatusOK, echo.Map{"days": GroupByDate(items)})
}
