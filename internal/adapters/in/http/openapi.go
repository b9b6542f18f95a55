package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"delivery-order/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// openAPIValidator rejects requests that do not match the document with a
// 400. Requests to routes outside the document pass through untouched.
func openAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: requestErrorMessage(err),
				})
			}

			return next(c)
		}
	}, nil
}

// requestErrorMessage names the offending parameter or body field without
// the schema dump kin-openapi puts into SchemaError.Error.
func requestErrorMessage(err error) string {
	var (
		reqErr    *openapi3filter.RequestError
		schemaErr *openapi3.SchemaError
	)

	where := "request"
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.Parameter != nil:
			where = "parameter " + reqErr.Parameter.Name
		case reqErr.RequestBody != nil:
			where = "body"
		}
	}

	if errors.As(err, &schemaErr) {
		if ptr := schemaErr.JSONPointer(); len(ptr) > 0 {
			where += " field " + strings.Join(ptr, ".")
		}
		return fmt.Sprintf("invalid %s: %s", where, schemaErr.Reason)
	}

	if reqErr != nil && reqErr.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", where, reqErr.Reason)
	}

	return "invalid " + where
}

// swaggerDoc serves the OpenAPI document to echo-swagger through the swag
// registry.
type swaggerDoc struct {
	raw string
}

func (d swaggerDoc) ReadDoc() string {
	return d.raw
}

var registerSwaggerOnce sync.Once

// registerSwaggerDoc publishes doc under swag.Name. swag panics on a second
// registration of the same name, so only the first call takes effect.
func registerSwaggerDoc(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{raw: string(raw)})
	})

	return nil
}
