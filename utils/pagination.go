package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type Page struct {
	Page  int
	Limit int
}

// ParsePage reads page/limit query parameters, falling back to sane
// defaults and capping the page size.
func ParsePage(c *gin.Context) Page {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Page{Page: page, Limit: limit}
}

type pageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Links builds the next/prev block of the listing envelope.
func (p Page) Links(total int64) gin.H {
	links := gin.H{}
	if int64(p.Page*p.Limit) < total {
		links["next"] = pageRef{Page: p.Page + 1, Limit: p.Limit}
	}
	if p.Page > 1 {
		links["prev"] = pageRef{Page: p.Page - 1, Limit: p.Limit}
	}
	return links
}
