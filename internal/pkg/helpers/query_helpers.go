package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// BoolQuery reads an optional boolean query parameter.
// Absent or unparsable values yield nil so no filter is applied.
func BoolQuery(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
