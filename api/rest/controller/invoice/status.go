package invoice

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/invoice"
	"github.com/shopops-cloud/shopops/internal/models"
	"gorm.io/gorm"
)

type StatusRequest struct {
	Status models.InvoiceStatus `json:"status"`
}

func PutStatus(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	req := &StatusRequest{}
	if err := c.Bind(req); err != nil {
		return err
	}

	j, err := invoice.Service(c.Request().Context()).SetStatus(jobID, req.Status)
	switch {
	case err == nil:
	case errors.Is(err, invoice.ErrBadStatus):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.Is(err, invoice.ErrNoInvoice), errors.Is(err, invoice.ErrSameStatus):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusOK, j)
}
