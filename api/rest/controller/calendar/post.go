package calendar

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/job"
	"github.com/shopops-cloud/shopops/internal/export"
	"gorm.io/gorm"
)

// Post creates a due date event for a job.
func Post(c echo.Context) error {
	cal := export.CalendarClient()
	if cal == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "calendar is not configured")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	ctx := c.Request().Context()

	j, err := job.Service(ctx).Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.ErrNotFound
		}

		return echo.ErrInternalServerError.SetInternal(err)
	}

	if j.DueDate == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "job has no due date")
	}

	event, err := cal.CreateEvent(ctx, j)
	if err != nil {
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusCreated, event)
}
