package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/lunchmicro/lunchsvc/internal/domain/errors"
	"github.com/lunchmicro/lunchsvc/internal/domain/model"
	"github.com/lunchmicro/lunchsvc/internal/server/http/dto"
)

// statusFor maps domain failures to HTTP statuses. Anything unmatched is
// an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrNotOwnedByChild):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrOrderCompleted),
		errors.Is(err, domainErrors.ErrOrderNotPaid),
		errors.Is(err, domainErrors.ErrCancelTooLate),
		errors.Is(err, domainErrors.ErrDuplicateOrder):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidMeal),
		errors.Is(err, domainErrors.ErrInvalidOrderDay),
		errors.Is(err, domainErrors.ErrOrderCutoffPassed),
		errors.Is(err, domainErrors.ErrInvalidStatus):
		return http.StatusBadRequest
	}

	var dayErr *model.InvalidOrderDayError
	if errors.As(err, &dayErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// respondError writes the error body clients consume. Internal failures
// are not echoed back verbatim.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	c.JSON(status, dto.ErrorResponse{
		Error:     message,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID,
		ParentID:    order.ParentID,
		ChildID:     order.ChildID,
		Meal:        string(order.Meal),
		MealName:    order.Meal.DisplayName(),
		Quantity:    order.Quantity,
		OrderDay:    order.OrderDay,
		UnitPrice:   order.UnitPrice,
		Total:       order.Total,
		Status:      string(order.Status),
		CreatedOn:   order.CreatedOn,
		UpdatedOn:   order.UpdatedOn,
		CompletedOn: order.CompletedOn,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}
