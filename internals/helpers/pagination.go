package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Every listing in the quiz engine uses the same fixed page size. Pages are
// zero-based; a page past the end is an empty page, never an error.
const PageSize = 10

// ResolvePage reads ?page= and normalizes it. Missing, malformed or negative
// values fall back to page 0.
func ResolvePage(c *fiber.Ctx) int {
	raw := strings.TrimSpace(c.Query("page", "0"))
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0
	}
	return page
}

func Offset(page int) int { return page * PageSize }

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"` // items on this page
}

func BuildPagination(total int64, page, count int) Pagination {
	totalPages := int((total + PageSize - 1) / PageSize)
	return Pagination{
		Page:       page,
		PerPage:    PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page+1 < totalPages,
		HasPrev:    page > 0,
		Count:      count,
	}
}
