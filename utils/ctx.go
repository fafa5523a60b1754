package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the id the auth middleware stored on the context.
// Zero means no authenticated user.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
