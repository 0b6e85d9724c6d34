package admin

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/admin"
	"github.com/shopops-cloud/shopops/internal/auth"
)

// ClientLogin authenticates a company-bound client account.
func ClientLogin(c echo.Context) error {
	req := &LoginRequest{}

	if err := c.Bind(req); err != nil {
		return err
	}

	a, err := admin.Service(c.Request().Context()).ClientLogin(req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, admin.ErrInvalidCredentials):
		return echo.ErrUnauthorized.SetInternal(err)
	case errors.Is(err, admin.ErrNotApproved), errors.Is(err, admin.ErrNotClient):
		return echo.ErrForbidden.SetInternal(err)
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}

	token, err := auth.Default().Issue(a)
	if err != nil {
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusOK, &LoginResponse{Token: token, Admin: a})
}
