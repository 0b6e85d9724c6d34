package task

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/task"
	"gorm.io/gorm"
)

func Post(c echo.Context) error {
	req := &task.CreateRequest{}

	if err := c.Bind(req); err != nil {
		return err
	}

	t, err := task.Service(c.Request().Context()).Create(req)
	switch {
	case err == nil:
	case errors.Is(err, task.ErrDescriptionRequired):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusCreated, t)
}
