package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mycolab/pkg/apperr"
)

// StatusFor maps a service error to the HTTP status the API answers with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidTransition), errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, apperr.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Fail writes err as {"error": ...} with the mapped status.
func Fail(c echo.Context, err error) error {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request().Method, "path", c.Path(), "err", err)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

// Bind decodes the body into dst. The returned error is an *echo.HTTPError
// ready to be returned from the handler.
func Bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	return nil
}

func UID(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}

func ParamID(c echo.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

func QueryID(c echo.Context, name string) *uint {
	v, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	id := uint(v)
	return &id
}

func Ptr[T any](t T) *T { return &t }
