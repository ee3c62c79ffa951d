package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"capsule/internal/generated/servers"
	"capsule/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
)

const kindUnauthorized = "unauthorized"

// NewRequestValidator checks path and query parameters, the JSON body and the
// X-User-ID requirement of every request against the embedded OpenAPI
// document before the handler runs. Paths the document does not know fall
// through to echo's own routing.
func NewRequestValidator() (echo.MiddlewareFunc, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to load openapi document")
	}
	// match on the path only, whatever host the service runs behind
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to build openapi router")
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: authenticate,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if errors.Is(findErr, routers.ErrPathNotFound) || errors.Is(findErr, routers.ErrMethodNotAllowed) {
					return next(c)
				}
				return findErr
			}

			validateErr := openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if validateErr != nil {
				return requestError(validateErr)
			}

			return next(c)
		}
	}, nil
}

// authenticate accepts any non-blank value of the api key header. The gateway
// in front of the service has already checked who the caller is.
func authenticate(_ context.Context, input *openapi3filter.AuthenticationInput) error {
	scheme := input.SecurityScheme
	if scheme == nil || scheme.Type != "apiKey" || scheme.In != openapi3.ParameterInHeader {
		return pkgerrors.Errorf("unsupported security scheme %q", input.SecuritySchemeName)
	}

	if strings.TrimSpace(input.RequestValidationInput.Request.Header.Get(scheme.Name)) == "" {
		return pkgerrors.Errorf("missing %s header", scheme.Name)
	}
	return nil
}

// requestError turns a validation failure into an *echo.HTTPError carrying the
// body errorHandler writes.
func requestError(err error) *echo.HTTPError {
	var securityErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &securityErr) {
		message := "missing " + UserIDHeader + " header"
		return echo.NewHTTPError(http.StatusUnauthorized, newError(http.StatusUnauthorized, message, kindUnauthorized))
	}

	return echo.NewHTTPError(http.StatusBadRequest,
		newError(http.StatusBadRequest, err.Error(), string(errs.KindValidation)))
}
