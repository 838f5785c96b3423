package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filters struct {
	States []string `json:"states" validate:"omitempty,dive,entityid"`
	Name   string   `json:"name" validate:"required"`
}

func TestEntityID(t *testing.T) {
	v := New()

	err := v.Struct(filters{
		States: []string{"0b3a2c1e-7b3f-4b87-9a55-7f2c0b5e9d10"},
		Name:   "x",
	})
	assert.NoError(t, err)

	err = v.Struct(filters{States: []string{"nope"}, Name: "x"})
	var verr validator.ValidationErrors
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr, 1)
	assert.Equal(t, EntityID, verr[0].Tag())
	assert.Equal(t, "uuid", verr[0].ActualTag())
	assert.Equal(t, "states[0]", verr[0].Field())
}

func TestFieldsUseJSONNames(t *testing.T) {
	err := New().Struct(filters{})

	var verr validator.ValidationErrors
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr, 1)
	assert.Equal(t, "name", verr[0].Field())
	assert.Equal(t, "required", verr[0].Tag())
}
