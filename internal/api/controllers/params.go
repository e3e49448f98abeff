package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paginationParams turns page/pageSize query params into an offset/limit
// pair. Bad values fall back to the first page.
func paginationParams(c *gin.Context, defaultPageSize int) (offset, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	return (page - 1) * pageSize, pageSize
}

func pathInt64(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
