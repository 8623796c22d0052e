// pkg/pagination/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

/* ===============================
   Paging resolver (query → page/limit/offset)
=================================*/

type Paging struct {
	Page   int
	Limit  int
	Offset int
	Search string
}

// ResolvePaging reads ?page=, ?limit= (or ?per_page=) and ?search=.
// defaultLimit applies when limit is missing or invalid; maxLimit caps it (0 = no cap).
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))

	limitStr := strings.TrimSpace(c.Query("limit"))
	if limitStr == "" {
		limitStr = strings.TrimSpace(c.Query("per_page"))
	}
	limit, _ := strconv.Atoi(limitStr)

	p := NewPaging(page, limit, defaultLimit, maxLimit)
	p.Search = strings.TrimSpace(c.Query("search"))
	return p
}

// NewPaging normalises page/limit the same way ResolvePaging does.
func NewPaging(page, limit, defaultLimit, maxLimit int) Paging {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

/* ===============================
   Pagination builder
=================================*/

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// BuildPagination echoes the requested page even when it is past the end.
func BuildPagination(total int64, page, limit int) Pagination {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = DefaultPage
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit)) // ceil
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
