// Package handlers exposes the CRM store over JSON HTTP endpoints.
package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/jordanlanch/nexuscrm/pkg/api/errors"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// bindAndValidate decodes the request into req and runs its validate tags.
// On failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, errors.ValidationError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return false, errors.ValidationError(c, err)
	}
	return true, nil
}
