package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(signupPayload{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	assert.Nil(t, errs)
}

func TestStruct_RequiredUsesJSONTagName(t *testing.T) {
	errs := Struct(signupPayload{Email: "alice@example.com", Password: "secret1"})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "Name is required", errs[0].Message)
}

func TestStruct_EmailFormat(t *testing.T) {
	errs := Struct(signupPayload{Name: "Alice", Email: "not-an-email", Password: "secret1"})
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "Please include a valid email", errs[0].Message)
}

func TestStruct_PasswordMinLength(t *testing.T) {
	errs := Struct(signupPayload{Name: "Alice", Email: "alice@example.com", Password: "abc"})
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
	assert.Equal(t, "Please enter a password with 6 or more characters", errs[0].Message)
}

func TestStruct_CollectsEveryFailure(t *testing.T) {
	errs := Struct(signupPayload{})
	require.Len(t, errs, 3)

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "email", "password"}, fields)
}
