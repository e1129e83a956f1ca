package authtest

import (
	"encoding/json"
	"errors"
	"net/http"
)

type errorCode string

const (
	codeBadRequest   errorCode = "bad_request"
	codeValidation   errorCode = "validation_failed"
	codeUnauthorized errorCode = "unauthorized"
	codeForbidden    errorCode = "forbidden"
	codeNotFound     errorCode = "not_found"
	codeConflict     errorCode = "conflict"
	codeInternal     errorCode = "internal_error"
)

// apiError is a failure with a stable code, rendered as
// {"error": code, "error_description": message}.
type apiError struct {
	Code    errorCode
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

func newAPIError(code errorCode, msg string) error {
	return &apiError{Code: code, Message: msg}
}

func statusFor(code errorCode) int {
	switch code {
	case codeBadRequest, codeValidation:
		return http.StatusBadRequest
	case codeUnauthorized:
		return http.StatusUnauthorized
	case codeForbidden:
		return http.StatusForbidden
	case codeNotFound:
		return http.StatusNotFound
	case codeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; an encoding failure cannot change the status.
	_ = json.NewEncoder(w).Encode(response)
}

func writeError(w http.ResponseWriter, err error) {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		apiErr = &apiError{Code: codeInternal}
	}
	response := map[string]string{"error": string(apiErr.Code)}
	if apiErr.Message != "" {
		response["error_description"] = apiErr.Message
	}
	writeJSON(w, statusFor(apiErr.Code), response)
}

// decodeAndValidate decodes the JSON body into T and validates it.
// On failure it writes the error response and returns false.
func decodeAndValidate[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, newAPIError(codeBadRequest, "invalid json payload"))
		return nil, false
	}
	if err := validate(&req); err != nil {
		writeError(w, err)
		return nil, false
	}
	return &req, true
}
