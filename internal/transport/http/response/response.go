package response

import "github.com/gin-gonic/gin"

// Every reply is a {success: bool, ...} envelope. Extra fields (user, token,
// data, favorites) ride alongside via the payload map.

func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// Internal hides the underlying error from clients unless dev mode is on;
// the full detail is expected to be logged server-side by the caller.
func Internal(c *gin.Context, message string, err error, dev bool) {
	body := gin.H{
		"success": false,
		"message": message,
	}
	if dev && err != nil {
		body["error"] = err.Error()
	}
	c.JSON(500, body)
}
