package services

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type createRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   *string  `json:"description"`
	Category      string   `json:"category" validate:"required,oneof=teaching assignments editing photography designing party_prep"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	AvailableDate string   `json:"available_date" validate:"required,datetime=2006-01-02"`
	StartTime     string   `json:"start_time" validate:"required"`
	EndTime       string   `json:"end_time" validate:"required"`
}

// Create lists a new bookable service. An absent price means "contact
// for price". The offered date must be tomorrow or later.
func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	offered, err := time.Parse(dateLayout, req.AvailableDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid available_date"})
	}
	now := h.now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	if offered.Before(tomorrow) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "available_date must be tomorrow or later"})
	}

	if req.Description != nil && *req.Description == "" {
		req.Description = nil
	}

	s := Service{
		ID:            uuid.New().String(),
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		AvailableDate: req.AvailableDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		IsAvailable:   true,
	}

	if err := h.store.Insert(c.Request().Context(), &s); err != nil {
		c.Logger().Errorf("create service: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create service"})
	}

	return c.JSON(http.StatusCreated, s)
}

// Categories returns the service category label table.
func (h *Handler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"categories": Categories})
}
