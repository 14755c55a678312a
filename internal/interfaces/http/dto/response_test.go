package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse(map[string]string{"key": "value"})

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
	assert.Nil(t, resp.Meta)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		page          int
		pageSize      int
		expectedPages int
	}{
		{"exact division", 100, 1, 10, 10},
		{"rounds up", 101, 1, 10, 11},
		{"single page", 5, 1, 20, 1},
		{"empty result", 0, 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewSuccessResponseWithMeta([]string{}, tt.total, tt.page, tt.pageSize)

			require.NotNil(t, resp.Meta)
			assert.Equal(t, tt.total, resp.Meta.Total)
			assert.Equal(t, tt.page, resp.Meta.Page)
			assert.Equal(t, tt.pageSize, resp.Meta.PageSize)
			assert.Equal(t, tt.expectedPages, resp.Meta.TotalPages)
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrCodeNotFound, "Employee not found")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Employee not found", resp.Error.Message)
	assert.Empty(t, resp.Error.RequestID)
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeInternal, "boom", "req-123")

	require.NotNil(t, resp.Error)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "email", Message: "Invalid email format"},
		{Field: "name", Message: "This field is required"},
	}
	resp := NewValidationErrorResponse("Request validation failed", "req-456", details)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Len(t, resp.Error.Details, 2)
}

func TestErrorInfoJSONOmitsEmptyFields(t *testing.T) {
	resp := NewErrorResponse(ErrCodeBadRequest, "bad input")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "request_id")
	assert.NotContains(t, string(raw), "details")
}
