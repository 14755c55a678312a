package dto

import (
	"net/http"
	"strings"
)

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeInvalidCredentials is used when login credentials do not match
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	// ErrCodeTokenRevoked is used when the auth token has been revoked
	ErrCodeTokenRevoked = "ERR_TOKEN_REVOKED"
	// ErrCodeTokenMaxRefresh is used when a refresh chain has been exhausted
	ErrCodeTokenMaxRefresh = "ERR_TOKEN_MAX_REFRESH"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodePeriodClosed is used when a pay period no longer accepts runs
	ErrCodePeriodClosed = "ERR_PERIOD_CLOSED"
	// ErrCodeEmployeeInactive is used when an operation needs an active employee
	ErrCodeEmployeeInactive = "ERR_EMPLOYEE_INACTIVE"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,
	ErrCodeTokenMaxRefresh:    http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:     http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:     http.StatusUnprocessableEntity,
	ErrCodePeriodClosed:     http.StatusUnprocessableEntity,
	ErrCodeEmployeeInactive: http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to wire-level codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":      ErrCodeNotFound,
	"USER_NOT_FOUND": ErrCodeNotFound,

	"ALREADY_EXISTS":        ErrCodeAlreadyExists,
	"EMAIL_TAKEN":           ErrCodeAlreadyExists,
	"SLUG_TAKEN":            ErrCodeAlreadyExists,
	"EMPLOYEE_NUMBER_TAKEN": ErrCodeAlreadyExists,
	"PROJECT_CODE_TAKEN":    ErrCodeAlreadyExists,
	"ALREADY_CLOCKED_IN":    ErrCodeConflict,
	"CONCURRENCY_CONFLICT":  ErrCodeConcurrencyConflict,

	"UNAUTHORIZED":        ErrCodeUnauthorized,
	"FORBIDDEN":           ErrCodeForbidden,
	"INVALID_CREDENTIALS": ErrCodeInvalidCredentials,
	"ACCOUNT_DEACTIVATED": ErrCodeForbidden,
	"NO_MEMBERSHIP":       ErrCodeForbidden,
	"ORG_INACTIVE":        ErrCodeForbidden,
	"TOKEN_EXPIRED":       ErrCodeTokenExpired,
	"TOKEN_INVALID":       ErrCodeTokenInvalid,
	"TOKEN_REVOKED":       ErrCodeTokenRevoked,
	"TOKEN_MAX_REFRESH":   ErrCodeTokenMaxRefresh,

	"INVALID_STATE":     ErrCodeInvalidState,
	"PERIOD_CLOSED":     ErrCodePeriodClosed,
	"EMPLOYEE_INACTIVE": ErrCodeEmployeeInactive,

	"VALIDATION_ERROR": ErrCodeValidation,
	"INVALID_INPUT":    ErrCodeInvalidInput,
	"BAD_REQUEST":      ErrCodeBadRequest,

	"INTERNAL_ERROR":      ErrCodeInternal,
	"PASSWORD_HASH_ERROR": ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the wire-level format.
// Domain validation codes all share the INVALID_ prefix and collapse to the
// generic validation code; anything else unknown passes through as-is.
func NormalizeErrorCode(code string) string {
	if wireCode, ok := DomainErrorCodeMapping[code]; ok {
		return wireCode
	}
	if strings.HasPrefix(code, "INVALID_") {
		return ErrCodeValidation
	}
	return code
}
