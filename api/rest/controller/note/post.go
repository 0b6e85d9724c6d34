package note

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/middleware"
	"github.com/shopops-cloud/shopops/api/rest/service/note"
	"gorm.io/gorm"
)

func Post(c echo.Context) error {
	req := &note.CreateRequest{}

	if err := c.Bind(req); err != nil {
		return err
	}

	// author is taken from the token, never from the body
	if claims := middleware.Claims(c); claims != nil {
		req.AdminID = claims.AdminID
	}

	n, err := note.Service(c.Request().Context()).Create(req)
	switch {
	case err == nil:
	case errors.Is(err, note.ErrContentRequired):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusCreated, n)
}
