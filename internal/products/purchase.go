package products

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// Purchase buys a sale listing. Purchase is destructive: the row is
// deleted outright. A vanished row counts as already purchased so that a
// duplicate click never surfaces as a hard error.
func (h *Handler) Purchase(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	listingType, err := h.store.GetType(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusOK, echo.Map{"message": "already purchased"})
		}
		c.Logger().Errorf("purchase lookup %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch product"})
	}
	if listingType != TypeSell {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product is not for sale"})
	}

	affected, err := h.store.Delete(ctx, id)
	if err != nil {
		c.Logger().Errorf("purchase %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not purchase product"})
	}
	if affected == 0 {
		// Someone else got there between the lookup and the delete.
		return c.JSON(http.StatusOK, echo.Map{"message": "already purchased"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "purchased successfully"})
}
