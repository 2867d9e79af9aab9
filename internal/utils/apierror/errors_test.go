package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValidationErrorMapsFields(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(struct {
		Email string `validate:"required,email"`
	}{Email: "not-an-email"})
	require.Error(t, err)

	resp := FromValidationError(err)
	require.NotNil(t, resp)

	structured, ok := resp.(*StructuredError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, structured.Code())
	assert.Contains(t, structured.Errors, "email")
}

func TestFromValidationErrorForeignError(t *testing.T) {
	// Anything that is not a validator error must surface as an opaque
	// 500, not as a typed nil hiding behind the interface.
	resp := FromValidationError(errors.New("driver gone"))
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusInternalServerError, resp.Code())
}
