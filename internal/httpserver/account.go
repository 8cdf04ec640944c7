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

type AccountHTTP struct {
	Svc    *service.AccountService
	Events *events.Producer
}

func (h *AccountHTTP) GetAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.get_account")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("get_account_failed", "status", 400, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.Svc.GetAccount(ctx, id)
	if err != nil {
		return respondError(c, l, "get_account", "customer account not found", err)
	}

	return c.JSON(http.StatusOK, transport.NewAccountResponse(account))
}

func (h *AccountHTTP) CreateAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.create_account")

	var req transport.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_account_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	account, err := h.Svc.CreateAccount(ctx, req)
	if err != nil {
		return respondError(c, l, "create_account", "customer account not found", err)
	}

	publish(c, h.Events, "account_events", fmt.Sprint(account.ID), map[string]any{
		"type":      "account_created",
		"accountID": account.ID,
		"username":  account.Username,
	})

	l.Info("create_account_success", "account_id", account.ID)
	return c.JSON(http.StatusCreated, transport.NewAccountResponse(account))
}

func (h *AccountHTTP) UpdateAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.update_account")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("update_account_failed", "status", 400, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req transport.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_account_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	account, err := h.Svc.UpdateAccount(ctx, id, req)
	if err != nil {
		return respondError(c, l, "update_account", "customer account not found", err)
	}

	publish(c, h.Events, "account_events", fmt.Sprint(account.ID), map[string]any{
		"type":      "account_updated",
		"accountID": account.ID,
		"username":  account.Username,
	})

	l.Info("update_account_success", "account_id", account.ID)
	return c.JSON(http.StatusOK, transport.NewAccountResponse(account))
}

func (h *AccountHTTP) DeleteAccount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.delete_account")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("delete_account_failed", "status", 400, "reason", "bad id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.DeleteAccount(ctx, id); err != nil {
		return respondError(c, l, "delete_account", "customer account not found", err)
	}

	publish(c, h.Events, "account_events", fmt.Sprint(id), map[string]any{
		"type":      "account_deleted",
		"accountID": id,
	})

	l.Info("delete_account_success", "account_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "customer account deleted successfully"})
}
