package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

var kindStatus = map[domain.Kind]int{
	domain.KindBadRequest:    http.StatusBadRequest,
	domain.KindNotFound:      http.StatusNotFound,
	domain.KindUnprocessable: http.StatusUnprocessableEntity,
	domain.KindInternal:      http.StatusInternalServerError,
}

// StatusOf maps an error returned by a handler to an HTTP status code
func StatusOf(err error) int {
	var de *domain.Error
	if errors.As(err, &de) {
		return kindStatus[de.Kind]
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

// ErrorHandler writes every handler error as an ErrorResponse
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := StatusOf(err)
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	} else {
		c.Logger().Debug(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, NewErrorResponse(code))
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
