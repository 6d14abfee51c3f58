package errors

import "net/http"

var ErrInvalidData = &Exception{
	Message:    "Invalid data",
	StatusCode: http.StatusBadRequest,
	Key:        KeyDetails,
}
