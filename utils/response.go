package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONList writes the paginated envelope used by every listing endpoint:
// {"success":true,"count":N,"pagination":{...},"data":[...]}.
func JSONList(c *gin.Context, code int, total int64, page Page, data interface{}) {
	c.JSON(code, gin.H{
		"success":    true,
		"count":      total,
		"pagination": page.Links(total),
		"data":       data,
	})
}
