package middleware

import (
	"errors"
	"net/http"
	"shopsight/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo error handler for errors that escape the
// handlers: unknown routes, bad methods, recovered panics.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	if writeErr := c.JSON(code, echo.Map{"message": message}); writeErr != nil {
		logger.Error("Failed to write error response", writeErr)
	}
}
