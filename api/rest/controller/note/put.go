package note

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/note"
	"gorm.io/gorm"
)

func Put(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	req := &note.UpdateRequest{}
	if err := c.Bind(req); err != nil {
		return err
	}

	n, err := note.Service(c.Request().Context()).Update(id, req)
	switch {
	case err == nil:
	case errors.Is(err, note.ErrBadStatus):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusOK, n)
}
