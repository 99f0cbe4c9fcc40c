package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	// MessageSuccess is the message used on every successful response.
	MessageSuccess = "Success"

	// InternalServerErrorCode marks failures the caller cannot fix by
	// changing the request.
	InternalServerErrorCode = 500
)
