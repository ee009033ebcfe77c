package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Message   string `json:"message"`
	Error     any    `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// JSON writes data as the bare response body. The client reads entities and
// lists directly, without an envelope.
func JSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// NoContent sends an empty response with the given status.
func NoContent(c *gin.Context, code int) {
	c.Status(code)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err any) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, ErrorBody{
		Message:   message,
		Error:     err,
		RequestID: idStr,
	})
}
