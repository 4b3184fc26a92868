package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// QueryParams carries pagination values parsed from the query string.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// FromContext parses page/page_size with defaults and bounds.
func FromContext(c echo.Context) QueryParams {
	p := QueryParams{PageNumber: DefaultPageNumber, PageSize: DefaultPageSize}

	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.PageNumber = v
	}
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 {
		if v > MaxPageSize {
			v = MaxPageSize
		}
		p.PageSize = v
	}
	return p
}

// Offset returns the SQL offset for the current page.
func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// LimitString and OffsetString are convenience helpers for query building.
func (p QueryParams) LimitString() string {
	return strconv.Itoa(p.PageSize)
}

func (p QueryParams) OffsetString() string {
	return strconv.Itoa(p.Offset())
}
