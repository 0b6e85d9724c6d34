package calendar

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/internal/export"
)

func Delete(c echo.Context) error {
	cal := export.CalendarClient()
	if cal == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "calendar is not configured")
	}

	eventID := c.Param("eventId")
	if eventID == "" {
		return echo.ErrBadRequest
	}

	if err := cal.DeleteEvent(c.Request().Context(), eventID); err != nil {
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.NoContent(http.StatusNoContent)
}
