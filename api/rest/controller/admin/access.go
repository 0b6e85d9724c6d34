package admin

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/admin"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/log"
	"gorm.io/gorm"
)

type AccessRequest struct {
	AccessLevel models.AccessLevel `json:"access_level"`
}

func PutAccess(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	req := &AccessRequest{}
	if err := c.Bind(req); err != nil {
		return err
	}

	log.Info("setting access level", "admin_id", id, "access_level", req.AccessLevel)

	a, err := admin.Service(c.Request().Context()).SetAccess(id, req.AccessLevel)
	switch {
	case err == nil:
	case errors.Is(err, admin.ErrBadAccessLevel):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusOK, a)
}
