package products

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// Rent starts a rental window on a rent listing by stamping rented_at.
// The row is never deleted; after duration_days elapse the item becomes
// available again with no further write. A zero-row update means the
// window is still active, reported as a conflict rather than letting
// the last write win.
func (h *Handler) Rent(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	affected, err := h.store.MarkRented(ctx, id, h.now())
	if err != nil {
		c.Logger().Errorf("rent %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not rent product"})
	}
	if affected > 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "rented successfully"})
	}

	listingType, err := h.store.GetType(ctx, id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	case err != nil:
		c.Logger().Errorf("rent lookup %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch product"})
	case listingType != TypeRent:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product is not for rent"})
	}

	return c.JSON(http.StatusConflict, echo.Map{"error": "product is already rented"})
}
