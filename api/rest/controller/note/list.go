package note

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopops-cloud/shopops/api/rest/pagination"
	"github.com/shopops-cloud/shopops/api/rest/service/note"
	"github.com/shopops-cloud/shopops/internal/models"
)

func List(c echo.Context) error {
	req, err := parseListRequest(c)
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	notes, total, err := note.Service(c.Request().Context()).List(req)
	if err != nil {
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusOK, pagination.NewResponse(notes, len(notes), total, req.Limit, req.Offset))
}

func parseListRequest(c echo.Context) (req *note.ListRequest, err error) {
	req = &note.ListRequest{
		JobID:  c.QueryParam("job_id"),
		Status: models.NoteStatus(c.QueryParam("status")),
	}

	if limit := c.QueryParam("limit"); limit != "" {
		if req.Limit, err = strconv.ParseUint(limit, 10, 64); err != nil {
			return nil, err
		}
	}

	if offset := c.QueryParam("offset"); offset != "" {
		if req.Offset, err = strconv.ParseUint(offset, 10, 64); err != nil {
			return nil, err
		}
	}

	if orderBy := c.QueryParam("order_by"); orderBy != "" {
		req.OrderBy = strings.Split(orderBy, ",")
	}

	return
}
