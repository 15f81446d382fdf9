package respond

import "github.com/gin-gonic/gin"

// JSON writes the payload with the given status. Success responses carry the
// resource directly; only errors get the envelope from Error.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
