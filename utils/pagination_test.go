package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pageFromQuery(query string) Page {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return ParsePage(c)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, Page{Page: 1, Limit: 10}, pageFromQuery(""))
	assert.Equal(t, Page{Page: 3, Limit: 25}, pageFromQuery("page=3&limit=25"))
	assert.Equal(t, Page{Page: 1, Limit: 10}, pageFromQuery("page=0&limit=-5"))
	assert.Equal(t, Page{Page: 1, Limit: 10}, pageFromQuery("page=abc&limit=xyz"))

	// Page size is capped.
	assert.Equal(t, Page{Page: 1, Limit: 100}, pageFromQuery("limit=5000"))
}

func TestPageLinks(t *testing.T) {
	p := Page{Page: 1, Limit: 10}
	links := p.Links(25)
	assert.Contains(t, links, "next")
	assert.NotContains(t, links, "prev")

	p = Page{Page: 2, Limit: 10}
	links = p.Links(25)
	assert.Contains(t, links, "next")
	assert.Contains(t, links, "prev")

	p = Page{Page: 3, Limit: 10}
	links = p.Links(25)
	assert.NotContains(t, links, "next")
	assert.Contains(t, links, "prev")

	// Everything fits on one page.
	links = Page{Page: 1, Limit: 10}.Links(5)
	assert.Empty(t, links)
}
