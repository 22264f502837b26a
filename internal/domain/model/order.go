package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle. Transitions are one-way:
// PAID -> CANCELLED or PAID -> COMPLETED, both terminal.
type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPaid, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

// Order describes a single prepaid lunch for one child on one weekday.
type Order struct {
	ID          uuid.UUID
	ParentID    uuid.UUID
	ChildID     uuid.UUID
	Meal        Meal
	Quantity    int
	OrderDay    string
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Status      OrderStatus
	CreatedOn   time.Time
	UpdatedOn   time.Time
	CompletedOn *time.Time
}

// Weekday parses the stored order day. Records may carry arbitrary text,
// so callers must handle the error instead of assuming a weekday.
func (o *Order) Weekday() (time.Weekday, error) {
	return ParseOrderDay(o.OrderDay)
}

// Order days are persisted as uppercase weekday names.
var orderDays = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

// ParseOrderDay converts a stored day name into a weekday.
func ParseOrderDay(day string) (time.Weekday, error) {
	if wd, ok := orderDays[strings.ToUpper(strings.TrimSpace(day))]; ok {
		return wd, nil
	}
	return 0, &InvalidOrderDayError{Day: day}
}

// OrderDayName renders a weekday in the stored representation.
func OrderDayName(wd time.Weekday) string {
	return strings.ToUpper(wd.String())
}

// BusinessDay reports whether lunches are served on the given weekday.
func BusinessDay(wd time.Weekday) bool {
	return wd >= time.Monday && wd <= time.Friday
}

// InvalidOrderDayError marks an order day value that is not a weekday name.
type InvalidOrderDayError struct {
	Day string
}

func (e *InvalidOrderDayError) Error() string {
	return "invalid order day: " + e.Day
}
