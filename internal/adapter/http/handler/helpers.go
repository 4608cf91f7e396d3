package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// BindOptionalJSON decodes the request body into obj. An empty body leaves obj
// untouched so that a missing field is reported the same way as an absent body.
func BindOptionalJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
