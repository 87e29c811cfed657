package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every /api route answers with.
type Response struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
	Errors   any    `json:"errors,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// WriteJSON writes any value as JSON with the given status code
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// ResponseJSON writes the envelope with custom status code
func ResponseJSON(w http.ResponseWriter, code int, success bool, message string, data any, errMsg string, errors any) {
	WriteJSON(w, code, Response{
		Success: success,
		Message: message,
		Data:    data,
		Error:   errMsg,
		Errors:  errors,
	})
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, data, "", nil)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, data, "", nil)
}

// ------------- Error responses -------------

// ResponseError returns an arbitrary error status, used when relaying backend failures
func ResponseError(w http.ResponseWriter, code int, errMsg string) {
	ResponseJSON(w, code, false, "", nil, errMsg, nil)
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, errMsg string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, false, "", nil, errMsg, errors)
}

// returns 401 Unauthorized and points the client back at the login view
func ResponseUnauthorized(w http.ResponseWriter, errMsg string) {
	WriteJSON(w, http.StatusUnauthorized, Response{
		Success:  false,
		Error:    errMsg,
		Redirect: "/login",
	})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, errMsg string) {
	ResponseJSON(w, http.StatusForbidden, false, "", nil, errMsg, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, errMsg string) {
	ResponseJSON(w, http.StatusNotFound, false, "", nil, errMsg, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, errMsg string) {
	ResponseJSON(w, http.StatusInternalServerError, false, "", nil, errMsg, nil)
}
