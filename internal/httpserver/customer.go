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

type CustomerHTTP struct {
	Svc    *service.CustomerService
	Events *events.Producer
}

func (h *CustomerHTTP) GetCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customers")

	customers, err := h.Svc.GetCustomers(ctx)
	if err != nil {
		return respondError(c, l, "get_customers", "customer not found", err)
	}

	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHTTP) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customer")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("get_customer_failed", "status", 400, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.Svc.GetCustomer(ctx, id)
	if err != nil {
		return respondError(c, l, "get_customer", "customer not found", err)
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHTTP) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.create_customer")

	var req transport.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_customer_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Svc.CreateCustomer(ctx, req)
	if err != nil {
		return respondError(c, l, "create_customer", "customer not found", err)
	}

	publish(c, h.Events, "customer_events", fmt.Sprint(customer.ID), map[string]any{
		"type":       "customer_created",
		"customerID": customer.ID,
		"name":       customer.Name,
	})

	l.Info("create_customer_success", "customer_id", customer.ID)
	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHTTP) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.update_customer")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("update_customer_failed", "status", 400, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req transport.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_customer_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Svc.UpdateCustomer(ctx, id, req)
	if err != nil {
		return respondError(c, l, "update_customer", "customer not found", err)
	}

	publish(c, h.Events, "customer_events", fmt.Sprint(customer.ID), map[string]any{
		"type":       "customer_updated",
		"customerID": customer.ID,
		"name":       customer.Name,
	})

	l.Info("update_customer_success", "customer_id", customer.ID)
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHTTP) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.delete_customer")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("delete_customer_failed", "status", 400, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.DeleteCustomer(ctx, id); err != nil {
		return respondError(c, l, "delete_customer", "customer not found", err)
	}

	publish(c, h.Events, "customer_events", fmt.Sprint(id), map[string]any{
		"type":       "customer_deleted",
		"customerID": id,
	})

	l.Info("delete_customer_success", "customer_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "customer removed successfully"})
}
