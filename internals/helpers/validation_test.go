package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halaqat_backend/internals/helpers/apperror"
)

type sampleForm struct {
	Name  string `form:"name" validate:"notblank"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestValidatorStruct(t *testing.T) {
	val := NewValidator()

	assert.NoError(t, val.Struct(sampleForm{Name: "عائشة"}))

	err := val.Struct(sampleForm{Name: "  ", Email: "nope"})
	require.Error(t, err)

	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	fm := ve.FieldMap()
	assert.Equal(t, []string{"name cannot be blank"}, fm["name"])
	assert.Len(t, fm["email"], 1)
}
