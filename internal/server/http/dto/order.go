package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest describes the lunch order creation payload.
type CreateOrderRequest struct {
	ParentID uuid.UUID `json:"parentId"`
	ChildID  uuid.UUID `json:"childId"`
	Meal     string    `json:"meal"`
	Quantity int       `json:"quantity"`
	OrderDay string    `json:"dayOfWeek"`
}

// OrderResponse describes an order as returned to clients.
type OrderResponse struct {
	ID          uuid.UUID       `json:"id"`
	ParentID    uuid.UUID       `json:"parentId"`
	ChildID     uuid.UUID       `json:"childId"`
	Meal        string          `json:"meal"`
	MealName    string          `json:"mealName"`
	Quantity    int             `json:"quantity"`
	OrderDay    string          `json:"dayOfWeek"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	CreatedOn   time.Time       `json:"createdOn"`
	UpdatedOn   time.Time       `json:"updatedOn"`
	CompletedOn *time.Time      `json:"completedOn,omitempty"`
}

// ErrorResponse mirrors the error body shape clients already consume.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
