package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// PageResponse is the envelope of every list endpoint.
type PageResponse struct {
	Count    int         `json:"count"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Results  interface{} `json:"results"`
}

// Paginator carries the default page size; reference tables use a small
// one, high-volume tables a large one.
type Paginator struct {
	DefaultSize int
}

// FromQuery reads "page" and "page_size" and returns limit/offset.
func (p Paginator) FromQuery(c *gin.Context) (limit, offset, page int) {
	page = 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit = p.DefaultSize
	if raw := c.Query("page_size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return limit, (page - 1) * limit, page
}

func newPage(count, page, pageSize int, results interface{}) PageResponse {
	return PageResponse{Count: count, Page: page, PageSize: pageSize, Results: results}
}
