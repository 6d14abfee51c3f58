package errors

import "net/http"

var ErrGoalNotFound = &Exception{
	Message:    "goal not found",
	StatusCode: http.StatusNotFound,
}
