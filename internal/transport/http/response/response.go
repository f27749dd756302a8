package response

import "github.com/gin-gonic/gin"

// Msg writes the {"msg": ...} shape used by the auth endpoints.
func Msg(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"msg": msg})
}

// Err writes the {"error": ...} shape used for routing and server failures.
// Internals are never echoed; callers log the details.
func Err(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}
