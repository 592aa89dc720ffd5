package apperror

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStorageClassifies(t *testing.T) {
	assert.Nil(t, Storage("noop", nil))

	nf := Storage("get student", gorm.ErrRecordNotFound)
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsStorage(nf))

	boom := Storage("list students", errors.New("no such table: students"))
	assert.True(t, IsStorage(boom))
	assert.False(t, IsNotFound(boom))
	assert.Equal(t, "list students: no such table: students", boom.Error())
}

func TestValidationErrorFieldMap(t *testing.T) {
	err := NewValidationError("validation failed",
		FieldError{Field: "name", Error: "name is a required field"},
		FieldError{Field: "name", Error: "name is too long"},
		FieldError{Field: "amount", Error: "amount must be 0 or greater"},
	)

	ve, ok := AsValidation(errors.Wrap(err, "create donation"))
	assert.True(t, ok)
	assert.Equal(t, map[string][]string{
		"name":   {"name is a required field", "name is too long"},
		"amount": {"amount must be 0 or greater"},
	}, ve.FieldMap())
}
