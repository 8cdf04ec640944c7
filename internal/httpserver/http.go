package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ecommerce-api/internal/events"
	"ecommerce-api/internal/service"
	"ecommerce-api/pkg/logging"
)

func parseID(s string) (uint, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return uint(id), nil
}

// parseIDList parses a comma-separated id path segment, e.g. "1,2,3".
func parseIDList(s string) ([]uint, error) {
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := parseID(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.New("ids must be a comma-separated list of positive integers")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// respondError maps service and gorm errors onto HTTP responses: field-level
// validation detail as 400, missing rows as 404, integrity conflicts as 409,
// everything else as 500.
func respondError(c echo.Context, l *slog.Logger, op, notFoundMsg string, err error) error {
	var ve *service.ValidationError

	switch {
	case errors.As(err, &ve):
		l.Warn(op+"_failed", "status", 400, "reason", "validation", "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": ve.Fields})
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, service.ErrNotFound):
		l.Warn(op+"_failed", "status", 404, "reason", notFoundMsg, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		l.Warn(op+"_failed", "status", 409, "reason", "still referenced", "error", err)
		return echo.NewHTTPError(http.StatusConflict, "record is still referenced by another record")
	case errors.Is(err, service.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		l.Warn(op+"_failed", "status", 409, "reason", "conflict", "error", err)
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		l.Error(op+"_failed", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func publish(c echo.Context, p *events.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "topic", topic, "error", err)
	}
}
