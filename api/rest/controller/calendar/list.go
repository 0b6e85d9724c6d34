package calendar

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/internal/export"
)

func List(c echo.Context) error {
	cal := export.CalendarClient()
	if cal == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "calendar is not configured")
	}

	events, err := cal.ListEvents(c.Request().Context())
	if err != nil {
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusOK, events)
}
