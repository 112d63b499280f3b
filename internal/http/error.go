package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/appclacks/scorecard/pkg/compliance"
	"github.com/labstack/echo/v4"
	er "github.com/mcorbin/corbierror"
)

func writeError(logger *slog.Logger, c echo.Context, status int, body any) {
	err := c.JSON(status, body)
	if err != nil {
		logger.Error(err.Error())
		c.Response().Status = http.StatusInternalServerError
	}
}

// echoError converts the errors raised by echo itself (routing, binding, validation).
func echoError(echoErr *echo.HTTPError) (int, []string, bool) {
	if jsonError, ok := echoErr.Internal.(*json.UnmarshalTypeError); ok {
		return http.StatusBadRequest, []string{fmt.Sprintf("invalid JSON payload, field %s is incorrect", jsonError.Field)}, true
	}
	switch echoErr.Code {
	case http.StatusBadRequest:
		if strings.Contains(echoErr.Error(), "Field validation") {
			return http.StatusBadRequest, strings.Split(fmt.Sprintf("%+v", echoErr.Message), "\n"), true
		}
		return http.StatusBadRequest, []string{fmt.Sprintf("%v", echoErr.Message)}, true
	case http.StatusMethodNotAllowed:
		return http.StatusMethodNotAllowed, []string{"method not allowed"}, true
	case http.StatusNotFound:
		return http.StatusNotFound, []string{"not found"}, true
	}
	return 0, nil, false
}

func errorHandler(logger *slog.Logger) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		// ctx.Error() can be called with a nil error by a middleware
		if err == nil {
			return
		}
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		logged := fmt.Sprintf("%s on %s %s (request %s)", err.Error(), c.Request().Method, c.Request().URL.Path, requestID)

		var corbiError *er.Error
		if errors.As(err, &corbiError) {
			if corbiError.Type == er.NotFound || corbiError.Type == er.BadRequest {
				logger.Warn(logged)
			} else {
				logger.Error(logged)
			}
			finalErr, status := er.HTTPError(*corbiError)
			writeError(logger, c, status, finalErr)
			return
		}
		if errors.Is(err, compliance.ErrSourceUnavailable) {
			logger.Error(logged)
			writeError(logger, c, http.StatusServiceUnavailable, er.Error{
				Messages: []string{"record source unavailable, please retry later"},
			})
			return
		}
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if status, messages, ok := echoError(echoErr); ok {
				logger.Warn(logged)
				writeError(logger, c, status, er.Error{Messages: messages})
				return
			}
		}
		logger.Error(logged)
		writeError(logger, c, http.StatusInternalServerError, er.Error{
			Messages: []string{"internal server error"},
		})
	}
}
