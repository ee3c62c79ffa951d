package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"capsule/internal/generated/servers"
	"capsule/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var kindStatus = map[errs.Kind]int{
	errs.KindValidation:          http.StatusBadRequest,
	errs.KindProviderUnavailable: http.StatusServiceUnavailable,
	errs.KindProviderRejected:    http.StatusUnprocessableEntity,
	errs.KindMalformedResponse:   http.StatusBadGateway,
	errs.KindNotFound:            http.StatusNotFound,
	errs.KindConflict:            http.StatusConflict,
	errs.KindInternal:            http.StatusInternalServerError,
}

// StatusOf maps an application error to its HTTP status.
func StatusOf(err error) int {
	if status, ok := kindStatus[errs.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newError(status int, message, kind string) servers.Error {
	body := servers.Error{Code: status, Message: message}
	if kind != "" {
		body.Kind = &kind
	}
	return body
}

func (s *Server) fail(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	status := StatusOf(err)

	message := err.Error()
	if kind == errs.KindInternal {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"error", err,
			"method", c.Request().Method,
			"path", c.Path(),
		)
		message = http.StatusText(status)
	}

	return c.JSON(status, newError(status, message, string(kind)))
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, message, string(errs.KindValidation)))
}

// errorHandler writes errors returned by middleware and the generated
// wrappers, such as unknown routes and unparsable parameters.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := newError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), string(errs.KindInternal))

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			switch msg := httpErr.Message.(type) {
			case servers.Error:
				body = msg
			case string:
				body = newError(httpErr.Code, msg, kindOfStatus(httpErr.Code))
			default:
				body = newError(httpErr.Code, fmt.Sprint(msg), kindOfStatus(httpErr.Code))
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error",
				"error", err,
				"method", c.Request().Method,
				"path", c.Path(),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func kindOfStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return string(errs.KindNotFound)
	case status == http.StatusUnauthorized:
		return kindUnauthorized
	case status >= http.StatusInternalServerError:
		return string(errs.KindInternal)
	default:
		return string(errs.KindValidation)
	}
}
