package response

import (
	"encoding/json"
	"net/http"
)

const (
	KindValidation       = "ValidationError"
	KindNotFound         = "NotFound"
	KindMethodNotAllowed = "MethodNotAllowed"
	KindInternal         = "InternalError"
)

type Response struct {
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// Data wraps payload in the {"data": ...} success envelope.
func Data(w http.ResponseWriter, statusCode int, payload interface{}) {
	JSON(w, statusCode, Response{Data: payload})
}

func Success(w http.ResponseWriter, payload interface{}) {
	Data(w, http.StatusOK, payload)
}

func Created(w http.ResponseWriter, payload interface{}) {
	Data(w, http.StatusCreated, payload)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Error(w http.ResponseWriter, statusCode int, kind, message string) {
	JSON(w, statusCode, ErrorResponse{
		Error:   kind,
		Message: message,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, KindValidation, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, KindNotFound, message)
}

func MethodNotAllowed(w http.ResponseWriter, message string) {
	Error(w, http.StatusMethodNotAllowed, KindMethodNotAllowed, message)
}

func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, KindInternal, message)
}
