package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "contactbook/internal/errors"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that renders every
// failure as {"message": ..., "data": null}. Unclassified errors are logged
// and answered with a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		appErr := apperrors.FromError(err)
		if appErr.IsInternal() {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(appErr.Status)
			return
		}
		_ = c.JSON(appErr.Status, appErr.ToErrorResponse())
	}
}
