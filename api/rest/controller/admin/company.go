package admin

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/admin"
	"gorm.io/gorm"
)

type CompanyRequest struct {
	CompanyID *uuid.UUID `json:"company_id"`
}

// PutCompany binds an admin to a company, or unbinds with a null id.
func PutCompany(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	req := &CompanyRequest{}
	if err := c.Bind(req); err != nil {
		return err
	}

	a, err := admin.Service(c.Request().Context()).SetCompany(id, req.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.ErrNotFound
		}

		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusOK, a)
}
