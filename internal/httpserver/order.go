package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"ecommerce-api/internal/events"
	"ecommerce-api/internal/service"
	"ecommerce-api/internal/transport"
	"ecommerce-api/pkg/logging"
)

type OrderHTTP struct {
	Svc    *service.OrderService
	Events *events.Producer
}

// CreateOrder handles POST /orders/:id, creating an order linked to the
// single product named in the path.
func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	productID, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "bad product id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return h.create(c, []uint{productID})
}

// CreateOrderMulti handles POST /order/:ids, where :ids is a comma-separated
// product id list, e.g. /order/1,2,3.
func (h *OrderHTTP) CreateOrderMulti(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order_multi")

	productIDs, err := parseIDList(c.Param("ids"))
	if err != nil {
		l.Warn("create_order_multi_failed", "status", 400, "reason", "bad product ids", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return h.create(c, productIDs)
}

func (h *OrderHTTP) create(c echo.Context, productIDs []uint) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, req, productIDs)
	if err != nil {
		return respondError(c, l, "create_order", "product not found", err)
	}

	publish(c, h.Events, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":       "order_created",
		"orderID":    order.ID,
		"customerID": order.CustomerID,
		"products":   productIDs,
	})

	l.Info("create_order_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, transport.NewOrderResponse(order))
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("get_order_failed", "status", 400, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		return respondError(c, l, "get_order", "order not found", err)
	}

	return c.JSON(http.StatusOK, transport.NewOrderResponse(order))
}

// GetOrdersByCustomer handles GET /orders/by-customer_id?customer_id=N.
// An empty result is a 404, never a silent empty list.
func (h *OrderHTTP) GetOrdersByCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders_by_customer")

	customerID, err := parseID(c.QueryParam("customer_id"))
	if err != nil {
		l.Warn("get_orders_by_customer_failed", "status", 400, "reason", "bad customer_id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "customer_id must be a positive integer")
	}

	orders, err := h.Svc.GetOrdersByCustomer(ctx, customerID)
	if err != nil {
		return respondError(c, l, "get_orders_by_customer", "customer not found", err)
	}

	if len(orders) == 0 {
		l.Warn("get_orders_by_customer_failed", "status", 404, "reason", "no orders for customer")
		return echo.NewHTTPError(http.StatusNotFound, "customer not found")
	}

	return c.JSON(http.StatusOK, transport.NewOrderResponses(orders))
}
