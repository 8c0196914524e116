package dto

import (
	"net/http"
	"strings"
)

// Domain error codes are mapped onto HTTP statuses here so handlers
// never hand-pick status codes. Codes follow the domain's
// <CATEGORY>_<DESCRIPTION> convention.

// errorCodeHTTPStatus maps known domain error codes to HTTP statuses
var errorCodeHTTPStatus = map[string]int{
	// Resource errors
	"NOT_FOUND":       http.StatusNotFound,
	"ALREADY_EXISTS":  http.StatusConflict,
	"CATEGORY_IN_USE": http.StatusConflict,

	// Auth errors
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DISABLED":    http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,

	// Business rule violations -> 422 Unprocessable Entity
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":  http.StatusUnprocessableEntity,
	"INSUFFICIENT_POINTS": http.StatusUnprocessableEntity,
	"EMPTY_CART":          http.StatusUnprocessableEntity,
	"INACTIVE_PRODUCT":    http.StatusUnprocessableEntity,
	"INACTIVE_RECORD":     http.StatusUnprocessableEntity,
	"SETTING_LOCKED":      http.StatusUnprocessableEntity,
	"WEAK_PASSWORD":       http.StatusUnprocessableEntity,

	// Malformed input
	"BAD_REQUEST":  http.StatusBadRequest,
	"INVALID_JSON": http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
// Validation codes all start with INVALID_ and map to 400; anything
// unrecognized is a 500 so programming mistakes surface loudly.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
