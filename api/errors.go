package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"journal.dev/editorial/errs"
)

// statusForKind maps a domain error kind to the HTTP status codes spec.md
// §6 requires, generically rather than by string-matching any message.
func statusForKind(kind errs.Kind) int {
	switch kind {
	case errs.InvalidArgument:
		return http.StatusBadRequest
	case errs.NotFound:
		return http.StatusNotFound
	case errs.Conflict:
		return http.StatusConflict
	case errs.Unauthenticated:
		return http.StatusUnauthorized
	case errs.Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON shape every error response takes, per spec.md §6:
// "error responses carry an error field and an appropriate status."
type errorBody struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler builds the echo.HTTPErrorHandler for this service: it
// classifies domain errors by errs.Kind, falls back to Echo's own
// *echo.HTTPError for routing-level failures (404 route, 405 method), and
// logs anything else as internal.
func NewHTTPErrorHandler(log *logrus.Entry) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var domainErr *errs.Error
		if errors.As(err, &domainErr) {
			writeJSONError(c, statusForKind(domainErr.Kind), domainErr.Message)
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg, _ := he.Message.(string)
			if msg == "" {
				msg = http.StatusText(he.Code)
			}
			writeJSONError(c, he.Code, msg)
			return
		}

		log.WithError(err).Error("unhandled error")
		writeJSONError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeJSONError(c echo.Context, status int, message string) {
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, errorBody{Error: message})
}
