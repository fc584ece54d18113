// Package handler exposes the services over HTTP with echo.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError writes the JSON error body matching err's kind.
// Internal failures are logged with their cause and answered with a generic message.
func respondError(c echo.Context, err error) error {
	log := logger.FromContext(c)
	status := apperr.HTTPStatus(err)

	body := echo.Map{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	appErr, ok := apperr.As(err)
	if status >= http.StatusInternalServerError || !ok {
		log.Error("Request failed",
			zap.String("path", c.Path()),
			zap.Error(err))
		body["error"] = "Internal server error"
		return c.JSON(http.StatusInternalServerError, body)
	}

	log.Warn("Request rejected",
		zap.String("path", c.Path()),
		zap.String("kind", appErr.Kind.String()),
		zap.String("reason", appErr.Message))
	body["error"] = appErr.Message
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	return c.JSON(status, body)
}

// bindAndValidate decodes the request body into req and checks its validate tags
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		msg := "invalid request body"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if detail, ok := he.Message.(string); ok && detail != "" {
				msg += ": " + detail
			}
		}
		return apperr.Validation(msg)
	}
	return c.Validate(req)
}

// parseID reads an unsigned integer path parameter
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.ValidationFields("invalid id", map[string]string{name: "must be a positive integer"})
	}
	return uint(id), nil
}

// respond writes v with status, or the error body when err is set
func respond(c echo.Context, status int, v interface{}, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(status, v)
}
