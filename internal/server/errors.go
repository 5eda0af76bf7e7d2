package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/handlers"
	appmiddleware "github.com/nfrund/folio/internal/middleware"
)

// setupErrorHandling installs the HTTP error handler. Expected echo errors
// (404, 405, 429...) are logged as warnings; anything else is an unhandled
// error and is logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := appmiddleware.FromContext(c.Request().Context())
		req := c.Request()

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			logger.Warn("HTTP error", "status", code, "method", req.Method, "uri", req.RequestURI, "error", err.Error())
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", req.Method,
				"uri", req.RequestURI,
				"stack_trace", string(debug.Stack()),
			)
		}

		if err := respondError(c, code, message); err != nil {
			logger.Error("Failed to write error response", "error", err)
		}
	}
}

func respondError(c echo.Context, code int, message string) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(code)
	}
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(code, handlers.ErrorResponse{Code: strconv.Itoa(code), Message: message})
	}
	return c.String(code, message)
}
