package respond

import (
	"github.com/gin-gonic/gin"

	"playlist-backend/internal/shared/telemetry"
)

// ErrorResponse is the error body shape. RawOutput is attached only for
// model-output parse failures, so operators can see what the model returned.
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RawOutput string `json:"raw_output,omitempty"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, message, details string) {
	ErrorWithRaw(c, status, message, details, "")
}

// ErrorWithRaw sends an error response carrying raw model output.
func ErrorWithRaw(c *gin.Context, status int, message, details, rawOutput string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if details != "" {
		fields["details"] = details
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Details:   details,
		RawOutput: rawOutput,
	})
}
