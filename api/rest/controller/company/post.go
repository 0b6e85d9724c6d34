package company

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/company"
)

func Post(c echo.Context) error {
	req := &company.CreateRequest{}

	if err := c.Bind(req); err != nil {
		return err
	}

	comp, err := company.Service(c.Request().Context()).Create(req)
	switch {
	case err == nil:
	case errors.Is(err, company.ErrCodeRequired):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.Is(err, company.ErrCodeTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusCreated, comp)
}
