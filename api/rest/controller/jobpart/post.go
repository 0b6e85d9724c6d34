package jobpart

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/jobpart"
	"gorm.io/gorm"
)

func Post(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	req := &jobpart.AddRequest{}
	if err := c.Bind(req); err != nil {
		return err
	}

	jp, err := jobpart.Service(c.Request().Context()).Add(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.ErrNotFound
		}

		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusCreated, jp)
}
