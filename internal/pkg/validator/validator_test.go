package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"01/2024", "12/1999", "09/2026"}
	for _, m := range valid {
		assert.True(t, IsValidMonth(m), m)
	}

	invalid := []string{"13/2024", "00/2024", "1/2024", "2024/01", "01-2024", "01/24", ""}
	for _, m := range invalid {
		assert.False(t, IsValidMonth(m), m)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("42"))
	assert.True(t, IsNumeric("0"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("-1"))
	assert.False(t, IsNumeric("4.2"))
	assert.False(t, IsNumeric("42a"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "file_path", Message: "is required"},
		{Field: "month", Message: "must be MM/YYYY"},
	}

	assert.Equal(t, "file_path: is required; month: must be MM/YYYY", errs.Error())
	assert.Equal(t, map[string]string{
		"file_path": "is required",
		"month":     "must be MM/YYYY",
	}, errs.ToMap())
}
