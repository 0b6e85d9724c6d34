package quote

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/quote"
	"github.com/shopops-cloud/shopops/pkg/log"
)

// Post accepts a quote request from the public form.
func Post(c echo.Context) error {
	req := &quote.CreateRequest{}

	if err := c.Bind(req); err != nil {
		return err
	}

	q, err := quote.Service(c.Request().Context()).Create(req)
	switch {
	case err == nil:
	case errors.Is(err, quote.ErrMissingFields):
		return echo.ErrBadRequest.SetInternal(err)
	default:
		log.Error("failed to store quote request", "error", err)
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusCreated, q)
}
