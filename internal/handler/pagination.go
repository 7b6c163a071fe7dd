package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	maxPageSize = 100
	maxPage     = 1_000_000
)

// PaginationMeta defines the structure for pagination metadata.
type PaginationMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// NewPaginationMeta builds the metadata of one page.
func NewPaginationMeta(totalItems int64, page, limit int) PaginationMeta {
	if limit <= 0 {
		limit = 1
	}
	return PaginationMeta{
		TotalItems:  totalItems,
		TotalPages:  (int(totalItems) + limit - 1) / limit,
		CurrentPage: page,
		PageSize:    limit,
	}
}

// pageParams reads ?page and ?limit. ok is false when no page was requested,
// in which case the whole collection is returned.
func pageParams(c *gin.Context) (page, limit int, ok bool) {
	if c.Query("page") == "" {
		return 0, 0, false
	}

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, true
}
