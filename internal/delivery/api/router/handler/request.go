// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pageDefaults is the sort applied when a listing request does not name one.
type pageDefaults struct {
	SortBy    string
	Direction string
}

var (
	productPageDefaults = pageDefaults{SortBy: "createdAt", Direction: entity.SortAsc}
	orderPageDefaults   = pageDefaults{SortBy: "createdAt", Direction: entity.SortDesc}
	userPageDefaults    = pageDefaults{SortBy: "createdAt", Direction: entity.SortDesc}
)

// pageParser reads page, size, sortBy and direction from the query string.
type pageParser struct {
	defaultSize int
	maxSize     int
}

func newPageParser(cfg *config.Config) pageParser {
	p := pageParser{defaultSize: 12, maxSize: 100}
	if cfg != nil && cfg.Store != nil {
		if cfg.Store.DefaultPageSize > 0 {
			p.defaultSize = cfg.Store.DefaultPageSize
		}
		if cfg.Store.MaxPageSize > 0 {
			p.maxSize = cfg.Store.MaxPageSize
		}
	}

	return p
}

func (p pageParser) parse(c echo.Context, defaults pageDefaults) (entity.PageRequest, error) {
	req := entity.PageRequest{
		Size:      p.defaultSize,
		SortBy:    defaults.SortBy,
		Direction: defaults.Direction,
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return req, domainerrors.ErrValidationFailed.WithDetails("page must be a non-negative integer")
		}
		req.Page = page
	}

	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return req, domainerrors.ErrValidationFailed.WithDetails("size must be a positive integer")
		}
		req.Size = min(size, p.maxSize)
	}

	if sortBy := strings.TrimSpace(c.QueryParam("sortBy")); sortBy != "" {
		req.SortBy = sortBy
	}

	if raw := strings.TrimSpace(c.QueryParam("direction")); raw != "" {
		switch strings.ToUpper(raw) {
		case entity.SortAsc:
			req.Direction = entity.SortAsc
		case entity.SortDesc:
			req.Direction = entity.SortDesc
		default:
			return req, domainerrors.ErrValidationFailed.WithDetails("direction must be ASC or DESC")
		}
	}

	return req, nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

func validationFailed(c echo.Context, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", fieldErrs)
	}

	return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
}
