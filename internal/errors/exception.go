package errors

import (
	"errors"
	"net/http"
)

const (
	KeyMessage = "message"
	KeyDetails = "details"
)

type Exception struct {
	Message    string
	StatusCode int
	// Key is the JSON field the message is rendered under.
	Key string
}

func (e *Exception) Error() string {
	return e.Message
}

// Body is the JSON payload sent to the client for this exception.
func (e *Exception) Body() map[string]string {
	key := e.Key
	if key == "" {
		key = KeyMessage
	}
	return map[string]string{key: e.Message}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
