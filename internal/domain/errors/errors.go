package errors

import "errors"

// Domain failures surfaced to callers. Handlers match these with
// errors.Is to choose an HTTP status; the messages are user facing.
var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidMeal       = errors.New("meal is not on the menu")
	ErrInvalidOrderDay   = errors.New("lunch can only be ordered for a working day")
	ErrOrderCutoffPassed = errors.New("orders for today must be placed before 10:00, it is too late to order lunch for today")
	ErrDuplicateOrder    = errors.New("child already has an order for this day")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrNotOwnedByChild   = errors.New("order does not belong to the specified child")
	ErrOrderCompleted    = errors.New("cannot cancel a completed order")
	ErrOrderNotPaid      = errors.New("only paid orders can be cancelled")
	ErrCancelTooLate     = errors.New("your lunch is almost completed, it is too late to cancel this order")
)
