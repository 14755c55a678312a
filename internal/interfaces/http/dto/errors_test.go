package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeUnknown, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeValidationRequired, http.StatusBadRequest},
		{ErrCodeValidationFormat, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeTokenInvalid, http.StatusUnauthorized},
		{ErrCodeTokenRevoked, http.StatusUnauthorized},
		{ErrCodeTokenMaxRefresh, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeConcurrencyConflict, http.StatusConflict},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeBusinessRule, http.StatusUnprocessableEntity},
		{ErrCodePeriodClosed, http.StatusUnprocessableEntity},
		{ErrCodeEmployeeInactive, http.StatusUnprocessableEntity},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInvalidJSON, http.StatusBadRequest},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Domain codes should be normalized
		{"NOT_FOUND", ErrCodeNotFound},
		{"USER_NOT_FOUND", ErrCodeNotFound},
		{"ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"EMAIL_TAKEN", ErrCodeAlreadyExists},
		{"SLUG_TAKEN", ErrCodeAlreadyExists},
		{"EMPLOYEE_NUMBER_TAKEN", ErrCodeAlreadyExists},
		{"PROJECT_CODE_TAKEN", ErrCodeAlreadyExists},
		{"ALREADY_CLOCKED_IN", ErrCodeConflict},
		{"CONCURRENCY_CONFLICT", ErrCodeConcurrencyConflict},
		{"UNAUTHORIZED", ErrCodeUnauthorized},
		{"INVALID_CREDENTIALS", ErrCodeInvalidCredentials},
		{"FORBIDDEN", ErrCodeForbidden},
		{"ACCOUNT_DEACTIVATED", ErrCodeForbidden},
		{"NO_MEMBERSHIP", ErrCodeForbidden},
		{"ORG_INACTIVE", ErrCodeForbidden},
		{"TOKEN_EXPIRED", ErrCodeTokenExpired},
		{"TOKEN_REVOKED", ErrCodeTokenRevoked},
		{"INVALID_STATE", ErrCodeInvalidState},
		{"PERIOD_CLOSED", ErrCodePeriodClosed},
		{"EMPLOYEE_INACTIVE", ErrCodeEmployeeInactive},
		{"VALIDATION_ERROR", ErrCodeValidation},
		{"BAD_REQUEST", ErrCodeBadRequest},
		{"INTERNAL_ERROR", ErrCodeInternal},
		{"PASSWORD_HASH_ERROR", ErrCodeInternal},
		// Field validation codes collapse to the generic validation code
		{"INVALID_EMAIL", ErrCodeValidation},
		{"INVALID_PROJECT_NAME", ErrCodeValidation},
		{"INVALID_CONTRACT_VALUE", ErrCodeValidation},
		{"INVALID_SCHEDULE", ErrCodeValidation},
		// New codes should pass through unchanged
		{ErrCodeNotFound, ErrCodeNotFound},
		{ErrCodeValidation, ErrCodeValidation},
		// Unknown codes should pass through unchanged
		{"CUSTOM_ERROR", "CUSTOM_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.input))
		})
	}
}

func TestDomainErrorCodeMappingTargetsAreMapped(t *testing.T) {
	// Every normalized target must have an HTTP status
	for domainCode, wireCode := range DomainErrorCodeMapping {
		_, ok := ErrorCodeHTTPStatus[wireCode]
		assert.True(t, ok, "mapping for %s targets unmapped code %s", domainCode, wireCode)
	}
}
