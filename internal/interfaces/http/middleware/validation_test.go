package middleware

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationFixture struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=10"`
	Role  string `json:"role" validate:"omitempty,oneof=owner admin member"`
}

func TestSetupValidator(t *testing.T) {
	// Must not panic, and must be safe to call repeatedly
	SetupValidator()
	SetupValidator()
}

func TestValidationDetails(t *testing.T) {
	err := validator.New().Struct(validationFixture{
		Email: "not-an-email",
		Name:  "",
		Role:  "superuser",
	})
	require.Error(t, err)

	validationErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	details := ValidationDetails(validationErrs)
	require.Len(t, details, 3)

	messages := make(map[string]string)
	for _, d := range details {
		messages[d.Field] = d.Message
	}
	assert.Equal(t, "Invalid email format", messages["Email"])
	assert.Equal(t, "This field is required", messages["Name"])
	assert.Equal(t, "Must be one of: owner admin member", messages["Role"])
}

func TestGetValidationMessage(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name     string
		value    validationFixture
		expected string
	}{
		{
			name:     "required",
			value:    validationFixture{Email: "a@b.co"},
			expected: "This field is required",
		},
		{
			name:     "email format",
			value:    validationFixture{Email: "nope", Name: "x"},
			expected: "Invalid email format",
		},
		{
			name:     "max length",
			value:    validationFixture{Email: "a@b.co", Name: "this name is far too long"},
			expected: "Must be at most 10 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.value)
			require.Error(t, err)

			validationErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok)
			require.NotEmpty(t, validationErrs)

			assert.Equal(t, tt.expected, getValidationMessage(validationErrs[0]))
		})
	}
}
