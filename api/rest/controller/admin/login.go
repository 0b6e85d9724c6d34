package admin

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/admin"
	"github.com/shopops-cloud/shopops/internal/auth"
	"github.com/shopops-cloud/shopops/internal/metrics"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin *models.Admin `json:"admin"`
}

func Login(c echo.Context) error {
	req := &LoginRequest{}

	if err := c.Bind(req); err != nil {
		return err
	}

	a, err := admin.Service(c.Request().Context()).Login(req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, admin.ErrInvalidCredentials):
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return echo.ErrUnauthorized.SetInternal(err)
	case errors.Is(err, admin.ErrNotApproved):
		metrics.LoginsTotal.WithLabelValues("unapproved").Inc()
		return echo.ErrForbidden.SetInternal(err)
	default:
		log.Error("login failed", "error", err)
		return echo.ErrInternalServerError.SetInternal(err)
	}

	token, err := auth.Default().Issue(a)
	if err != nil {
		return echo.ErrInternalServerError.SetInternal(err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, &LoginResponse{Token: token, Admin: a})
}
