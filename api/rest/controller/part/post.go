package part

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/part"
)

func Post(c echo.Context) error {
	req := &part.CreateRequest{}

	if err := c.Bind(req); err != nil {
		return err
	}

	p, err := part.Service(c.Request().Context()).Create(req)
	switch {
	case err == nil:
	case errors.Is(err, part.ErrNumberRequired):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.Is(err, part.ErrNumberTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusCreated, p)
}
