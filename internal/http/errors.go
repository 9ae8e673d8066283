package http

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	dto "task-list.com/task-list/internal/data_models"
	apperrors "task-list.com/task-list/internal/errors"
)

const serverErrorMessage = "Server Error"

// NewErrorHandler renders every handler error as {"error": "..."}. Errors that
// are not exceptions or echo HTTP errors are logged and hidden behind a
// generic 500.
func NewErrorHandler(logger *log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := resolveError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"err", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, dto.ErrorResponse{Error: message})
		}
		if writeErr != nil {
			logger.Warn("failed to write error response", "err", writeErr)
		}
	}
}

func resolveError(err error) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, serverErrorMessage
		}
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		return status, serverErrorMessage
	}
	return status, apperrors.Message(err)
}
