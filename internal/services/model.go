package services

import "time"

// Service is a bookable offering tied to a single calendar date.
type Service struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Category      string    `json:"category"`
	Price         *float64  `json:"price"`
	AvailableDate string    `json:"available_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryOption pairs a stored category value with its display label.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Categories lists the service categories shown in browse filters.
var Categories = []CategoryOption{
	{Value: "all", Label: "All Services"},
	{Value: "teaching", Label: "Tutoring"},
	{Value: "assignments", Label: "Assignment Help"},
	{Value: "editing", Label: "Editing"},
	{Value: "photography", Label: "Photography"},
	{Value: "designing", Label: "Design"},
	{Value: "party_prep", Label: "Events"},
}

const dateLayout = "2006-01-02"
