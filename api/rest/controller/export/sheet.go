package export

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/job"
	"github.com/shopops-cloud/shopops/internal/export"
	"github.com/shopops-cloud/shopops/pkg/log"
	"gorm.io/gorm"
)

// Sheet writes a job into the export spreadsheet.
func Sheet(c echo.Context) error {
	writer := export.Sheets()
	if writer == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "sheet export is not configured")
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

	if err := writer.PopulateJob(ctx, j); err != nil {
		log.Error("sheet export failed", "job_id", id, "error", err)
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.NoContent(http.StatusAccepted)
}
