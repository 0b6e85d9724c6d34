package job

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/job"
	"github.com/shopops-cloud/shopops/pkg/log"
	"gorm.io/gorm"
)

func Invoice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	j, err := job.Service(c.Request().Context()).Invoice(id)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	case errors.Is(err, job.ErrAlreadyInvoiced):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		log.Error("failed to invoice job", "job_id", id, "error", err)
		return echo.ErrInternalServerError.SetInternal(err)
	}

	log.Info("invoiced job", "job_id", id, "invoice_number", j.InvoiceNumber)

	return c.JSON(http.StatusOK, j)
}
