package job

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/job"
	"github.com/shopops-cloud/shopops/pkg/log"
	"gorm.io/gorm"
)

func Post(c echo.Context) error {
	req := &job.CreateRequest{}

	if err := c.Bind(req); err != nil {
		return err
	}

	log.Info("creating job", "company_id", req.CompanyID)

	j, err := job.Service(c.Request().Context()).Create(req)
	switch {
	case err == nil:
	case errors.Is(err, job.ErrCompanyRequired):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	default:
		log.Error("failed to create job", "error", err)
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusCreated, j)
}
