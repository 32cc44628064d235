package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"businessName" validate:"required"`
	Province string `json:"province" validate:"omitempty,province"`
	Geo      *struct {
		Latitude float64 `json:"latitude" validate:"latitude"`
	} `json:"geo,omitempty"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Province: "XX"})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Len(t, fields, 2)
	assert.Equal(t, FieldError{Field: "businessName", Rule: "required"}, fields[0])
	assert.Equal(t, FieldError{Field: "province", Rule: "province"}, fields[1])
}

func TestValidate_NestedField(t *testing.T) {
	v := New()
	s := &sample{Name: "Café", Province: "qc"}
	s.Geo = &struct {
		Latitude float64 `json:"latitude" validate:"latitude"`
	}{Latitude: 123}

	fields := FieldErrors(v.Validate(s))
	require.Len(t, fields, 1)
	assert.Equal(t, "geo.latitude", fields[0].Field)
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Name: "Café", Province: "ON"}))
	assert.Nil(t, FieldErrors(nil))
}
