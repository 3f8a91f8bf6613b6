// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"strconv"

	"shopapi/config"
	domainerrors "shopapi/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for date-only fields such as birthdays.
const dateLayout = "2006-01-02"

// parseIDParam reads a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidation.WithDetails(fmt.Sprintf("invalid %s: must be a UUID", name))
	}

	return id, nil
}

// parsePagination reads offset/limit query parameters with the listing
// defaults. Offset must be non-negative; limit must be positive and at most
// the page cap.
func parsePagination(c echo.Context) (offset int, limit int, err error) {
	offset, err = queryInt(c, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(c, "limit", config.DefaultPageLimit)
	if err != nil {
		return 0, 0, err
	}

	if offset < 0 {
		return 0, 0, domainerrors.ErrValidation.WithDetails("offset must be non-negative")
	}
	if limit <= 0 || limit > config.MaxPageLimit {
		return 0, 0, domainerrors.ErrValidation.WithDetails(
			fmt.Sprintf("limit must be between 1 and %d", config.MaxPageLimit))
	}

	return offset, limit, nil
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidation.WithDetails(fmt.Sprintf("invalid %s: must be an integer", name))
	}

	return value, nil
}
