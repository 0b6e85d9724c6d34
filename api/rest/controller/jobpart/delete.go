package jobpart

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/jobpart"
	"gorm.io/gorm"
)

func Delete(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	partID, err := uuid.Parse(c.Param("partId"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	if err := jobpart.Service(c.Request().Context()).Remove(jobID, partID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.ErrNotFound
		}

		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.NoContent(http.StatusNoContent)
}
