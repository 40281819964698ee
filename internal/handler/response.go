package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "contactbook/internal/errors"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Response{Message: message, Data: data})
}

// bindAndValidate decodes the request body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperrors.BadRequest("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// idParam parses a numeric path parameter.
func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.BadRequest(name + " must be numeric")
	}
	return uint(id), nil
}
