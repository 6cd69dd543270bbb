package response

import (
	"encoding/json"
	"net/http"
)

// exposeInternalErrors adds internal error text to 500 responses. Development only.
var exposeInternalErrors bool

// ExposeInternalErrors toggles internal error details in 500 responses.
func ExposeInternalErrors(enabled bool) {
	exposeInternalErrors = enabled
}

type ErrorResponse struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Success writes data as the response body without an envelope.
func Success(w http.ResponseWriter, statusCode int, data interface{}) {
	JSON(w, statusCode, data)
}

func Error(w http.ResponseWriter, statusCode int, message string, errors interface{}) {
	JSON(w, statusCode, ErrorResponse{
		Message: message,
		Errors:  errors,
	})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	Error(w, http.StatusBadRequest, "Invalid input", errors)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string, err error) {
	if message == "" {
		message = "Internal server error"
	}
	body := ErrorResponse{Message: message}
	if exposeInternalErrors && err != nil {
		body.Error = err.Error()
	}
	JSON(w, http.StatusInternalServerError, body)
}
