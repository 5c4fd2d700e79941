package services

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Book reserves a service. Booking is terminal: there is no unbooking
// path. The conditional write means a second booking of the same slot
// is rejected as a conflict rather than overwriting the first.
func (h *Handler) Book(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	affected, err := h.store.Book(ctx, id)
	if err != nil {
		c.Logger().Errorf("book %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not book service"})
	}
	if affected > 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "booked successfully"})
	}

	exists, err := h.store.Exists(ctx, id)
	if err != nil {
		c.Logger().Errorf("book lookup %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch service"})
	}
	if !exists {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
	}

	return c.JSON(http.StatusConflict, echo.Map{"error": "service is already booked"})
}
