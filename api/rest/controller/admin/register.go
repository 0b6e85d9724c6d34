package admin

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/admin"
	"github.com/shopops-cloud/shopops/pkg/log"
)

func Register(c echo.Context) error {
	req := &admin.RegisterRequest{}

	if err := c.Bind(req); err != nil {
		return err
	}

	log.Info("registering admin", "email", req.Email)

	a, err := admin.Service(c.Request().Context()).Register(req)
	switch {
	case err == nil:
	case errors.Is(err, admin.ErrMissingFields):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.Is(err, admin.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}

	// accounts start unapproved; no token is issued until a manager
	// raises the access level
	return c.JSON(http.StatusCreated, a)
}
