package httperr

import (
	"encoding/json"
	"net/http"
)

// Response is the canonical error envelope returned by Repaso APIs.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusCode maps a domain error code to an HTTP status for default responses.
func StatusCode(code string) int {
	switch code {
	case "not_found":
		return http.StatusNotFound
	case "unauthorized":
		return http.StatusUnauthorized
	case "forbidden":
		return http.StatusForbidden
	case "bad_request":
		return http.StatusBadRequest
	case "rate_limited":
		return http.StatusTooManyRequests
	case "unprocessable":
		return http.StatusUnprocessableEntity
	case "upstream_unavailable":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Write renders the error envelope for the given code with its default status.
func Write(w http.ResponseWriter, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(code))
	_ = json.NewEncoder(w).Encode(Response{Code: code, Message: message})
}
