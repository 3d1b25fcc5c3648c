package handlers

import (
	"net/http"

	"order_core/internal/adapter/http/dto/request"
	"order_core/internal/adapter/http/dto/response"
	"order_core/internal/adapter/http/middleware"
	"order_core/internal/infrastructure/metrics"
	"order_core/internal/usecase"

	"github.com/gin-gonic/gin"
)

const opAdvanceStatus = "advance_order_status"

type OrderHandler struct {
	usecase usecase.IOrderStatusUseCase
}

func NewOrderHandler(uc usecase.IOrderStatusUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// GetOrder godoc
// @Summary      Get an order with its items and status history
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	details, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"), middleware.CallerFrom(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDetails(details))
}

// UpdateOrderStatus godoc
// @Summary      Move an order forward in the workflow
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Order ID"
// @Param        payload  body      request.OrderStatusRequest  true  "Target status"
// @Success      200      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Advance(c.Request.Context(), c.Param("id"), payload.ResolveStatus(), middleware.CallerFrom(c), payload.Note)
	metrics.RecordOperation(opAdvanceStatus, outcome(err))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}
