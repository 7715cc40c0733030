// FILE: internal/pkg/serverutils/response.go
package serverutils

type Response[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string) Response[any] {
	return Response[any]{
		Status:  "error",
		Message: message,
	}
}

// ApiError carries an HTTP status through the service layer so the
// error handler middleware can map it without string matching.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(statusCode int, message string) *ApiError {
	return &ApiError{StatusCode: statusCode, Message: message}
}
