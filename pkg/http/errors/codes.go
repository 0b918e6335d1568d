package errors

import "net/http"

// Fixed messages rendered in the error envelope, keyed by HTTP status.
var messages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Resource was Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed for the requested URL",
	http.StatusUnprocessableEntity: "Unprocessed",
	http.StatusInternalServerError: "Internal Server Error",
	http.StatusServiceUnavailable:  "Service Unavailable",
}

// Message returns the envelope message for status, falling back to the
// standard status text.
func Message(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
