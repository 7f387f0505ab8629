// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"
	"strconv"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// HealthCheck answers load balancer probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request body into req and runs the struct tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// pageParams reads ?page=&pageSize= with the API defaults and caps.
func pageParams(c echo.Context) (page, pageSize int, err error) {
	page, pageSize = 1, defaultPageSize
	if raw := c.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil || page < 1 {
			return 0, 0, domainerrors.ErrValidationFailed.WithDetails("page must be a positive integer")
		}
	}
	if raw := c.QueryParam("pageSize"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil || pageSize < 1 {
			return 0, 0, domainerrors.ErrValidationFailed.WithDetails("pageSize must be a positive integer")
		}
	}

	return page, min(pageSize, maxPageSize), nil
}
