package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akiram/casting-agency/internal/auth"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// HTTPErrorHandler renders every failure, auth errors included, as the
// uniform {success:false, error, message} envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var authErr *auth.Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &authErr):
		code = authErr.Status
		message = authErr.Message
	case errors.As(err, &httpErr):
		code = httpErr.Code
		switch code {
		case http.StatusNotFound:
			message = "resource not found"
		case http.StatusMethodNotAllowed:
			message = "method not allowed"
		case http.StatusUnprocessableEntity:
			message = "unprocessable"
		default:
			if s, ok := httpErr.Message.(string); ok {
				message = s
			} else {
				message = http.StatusText(code)
			}
		}
	}

	if jsonErr := c.JSON(code, ErrorResponse{Success: false, Error: code, Message: message}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
