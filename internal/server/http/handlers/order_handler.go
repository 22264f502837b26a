package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lunchmicro/lunchsvc/internal/domain/model"
	"github.com/lunchmicro/lunchsvc/internal/server/http/dto"
	"github.com/lunchmicro/lunchsvc/internal/usecase"
)

// OrderHandler manages lunch order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/v1/lunches/order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), usecase.PlaceOrderRequest{
		ParentID: req.ParentID,
		ChildID:  req.ChildID,
		Meal:     model.Meal(req.Meal),
		Quantity: req.Quantity,
		OrderDay: req.OrderDay,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Cancel handles DELETE /api/v1/lunches/:orderId.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	childID, err := uuid.Parse(c.Query("childId"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.CancelOrder(c.Request.Context(), orderID, childID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListForChild handles GET /api/v1/lunches/child/:childId.
func (h *OrderHandler) ListForChild(c *gin.Context) {
	childID, err := uuid.Parse(c.Param("childId"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	orders, err := h.facade.OrdersForChild(c.Request.Context(), childID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListForParent handles GET /api/v1/lunches/parent/:parentId with an
// optional status filter.
func (h *OrderHandler) ListForParent(c *gin.Context) {
	parentID, err := uuid.Parse(c.Param("parentId"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var orders []model.Order
	if status := c.Query("status"); status != "" {
		orders, err = h.facade.OrdersForParentByStatus(c.Request.Context(), parentID, model.OrderStatus(status))
	} else {
		orders, err = h.facade.OrdersForParent(c.Request.Context(), parentID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}
