package products

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type createRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	Price        float64 `json:"price" validate:"gte=0"`
	Category     string  `json:"category" validate:"required,oneof=stationary electronics furniture lab_equipment"`
	Type         string  `json:"type" validate:"required,oneof=sell rent"`
	Condition    *string `json:"condition" validate:"omitempty,oneof=like_new good fair"`
	DurationDays *int    `json:"duration_days" validate:"omitempty,gt=0"`
	ImageURL     *string `json:"image_url"`
}

// Create lists a new product for sale or rent.
func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	// duration_days only means something for rent listings
	if req.Type != TypeRent {
		req.DurationDays = nil
	}
	if req.Description != nil && *req.Description == "" {
		req.Description = nil
	}

	p := Product{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Type:         req.Type,
		Condition:    req.Condition,
		DurationDays: req.DurationDays,
		ImageURL:     req.ImageURL,
		IsAvailable:  true,
	}

	if err := h.store.Insert(c.Request().Context(), &p); err != nil {
		c.Logger().Errorf("create product: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create product"})
	}

	return c.JSON(http.StatusCreated, p)
}

// Categories returns the product category and condition label tables.
func (h *Handler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"categories": Categories,
		"conditions": ConditionLabels,
	})
}
