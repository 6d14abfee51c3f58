package errors

import "net/http"

var ErrInvalidGoalID = &Exception{
	Message:    "invalid goal id",
	StatusCode: http.StatusBadRequest,
}
