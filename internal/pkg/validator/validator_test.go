package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("Ana"))
	assert.False(t, IsEmpty("  a  "))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0196c8a2-1f4d-7abc-89ab-0123456789ab"))
	// v4 is rejected, only v7 ids are used
	assert.False(t, IsValidUUID("123e4567-e89b-42d3-a456-426614174000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-05-12")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("12-05-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	types := []string{"morning", "afternoon", "night"}

	assert.True(t, IsInSlice("morning", types))
	assert.False(t, IsInSlice("Morning", types))
	assert.False(t, IsInSlice("off", types))
	assert.False(t, IsInSlice("x", nil))
}

func TestIsValidHexColor(t *testing.T) {
	assert.True(t, IsValidHexColor("#3b82f6"))
	assert.True(t, IsValidHexColor("#FFF"))
	assert.False(t, IsValidHexColor("3b82f6"))
	assert.False(t, IsValidHexColor("#12345"))
	assert.False(t, IsValidHexColor("blue"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "role", Message: "role is required"},
	}

	assert.Equal(t, "name: name is required; role: role is required", errs.Error())
	assert.Equal(t, map[string]string{
		"name": "name is required",
		"role": "role is required",
	}, errs.ToMap())
}
