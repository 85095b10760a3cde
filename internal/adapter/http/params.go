package http

import (
	"strconv"

	"shopadmin-backend/pkg/pagination"

	"github.com/labstack/echo/v4"
)

type paramError struct {
	param string
}

func (e *paramError) Error() string { return "invalid query param: " + e.param }

// bindPageParams reads the pagination query params. Unset params stay
// zero so the usecase defaults apply.
func bindPageParams(c echo.Context) (pagination.Request, *paramError) {
	var page pagination.Request
	if raw := c.QueryParam("pageNo"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page, &paramError{param: "pageNo"}
		}
		page.PageNo = n
	}
	if raw := c.QueryParam("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page, &paramError{param: "pageSize"}
		}
		page.PageSize = n
	}
	page.SortBy = c.QueryParam("sortBy")
	page.SortDir = c.QueryParam("sortDir")
	return page, nil
}
