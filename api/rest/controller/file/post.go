package file

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/service/file"
	"github.com/shopops-cloud/shopops/pkg/env"
	"gorm.io/gorm"
)

// Post accepts a multipart upload targeting a note or a part.
func Post(c echo.Context) error {
	header, err := c.FormFile("files")
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	if max := env.Variables().UploadMaxBytes; header.Size > max {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds upload limit")
	}

	req := &file.UploadRequest{
		Filename: header.Filename,
		MimeType: header.Header.Get(echo.HeaderContentType),
	}

	if raw := c.FormValue("note_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.ErrBadRequest.SetInternal(err)
		}
		req.NoteID = &id
	}

	if raw := c.FormValue("part_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.ErrBadRequest.SetInternal(err)
		}
		req.PartID = &id
	}

	src, err := header.Open()
	if err != nil {
		return echo.ErrInternalServerError.SetInternal(err)
	}
	defer src.Close()

	if req.Content, err = io.ReadAll(src); err != nil {
		return echo.ErrInternalServerError.SetInternal(err)
	}

	f, err := file.Service(c.Request().Context()).Upload(req)
	switch {
	case err == nil:
	case errors.Is(err, file.ErrNoTarget),
		errors.Is(err, file.ErrTwoTargets),
		errors.Is(err, file.ErrEmpty):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusCreated, f)
}
