package middleware

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/yigit/madrasah/internal/pkg/validation"
)

// BindJSON decodes the request body into obj. An empty body decodes to the zero value
// so that required-field rules report what is missing. Decoding failures come back as
// validation.Errors.
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return validation.FromBindError(err)
	}
	return nil
}
