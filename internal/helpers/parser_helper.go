package helpers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPage  = errors.New("invalid page number")
	errInvalidLimit = errors.New("invalid limit")
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// Pagination carries the page/limit query parameters shared by every
// list endpoint.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

func ParsePagination(c *gin.Context) (Pagination, error) {
	page, err := StringToInt(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return Pagination{}, errInvalidPage
	}

	limit, err := StringToInt(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		return Pagination{}, errInvalidLimit
	}

	return Pagination{Page: page, Limit: limit}, nil
}
