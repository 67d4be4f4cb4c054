package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type registrationForm struct {
	Username        string `validate:"required,usermin"`
	Email           string `validate:"email"`
	Pin             string `validate:"pin6"`
	Password        string `validate:"pwdmin"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

func TestValidateStructValid(t *testing.T) {
	require.NoError(t, ValidateStruct(&registrationForm{
		Username:        "mogul",
		Email:           "admin@example.com",
		Pin:             "123456",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}))
}

func TestValidateStructRequired(t *testing.T) {
	err := ValidateStruct(&registrationForm{Password: "secret1", ConfirmPassword: "secret1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Username")
}

func TestValidateStructOptionalRulesSkipEmpty(t *testing.T) {
	// Only required fails on empty; the other rules pass so partial update
	// payloads validate.
	require.NoError(t, ValidateStruct(&struct {
		Email string `validate:"email"`
		Pin   string `validate:"pin6"`
	}{}))
}

func TestValidateStructEmail(t *testing.T) {
	err := ValidateStruct(&registrationForm{Username: "mogul", Email: "not-an-email"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Email")
}

func TestValidateStructPin(t *testing.T) {
	for _, pin := range []string{"12345", "1234567", "12345a"} {
		err := ValidateStruct(&registrationForm{Username: "mogul", Pin: pin})
		require.Error(t, err, pin)
	}
	require.NoError(t, ValidateStruct(&registrationForm{Username: "mogul", Pin: "000000"}))
}

func TestValidateStructLengths(t *testing.T) {
	err := ValidateStruct(&registrationForm{Username: "abc"})
	require.Error(t, err)

	err = ValidateStruct(&registrationForm{Username: "mogul", Password: "short", ConfirmPassword: "short"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Password")
}

func TestValidateStructEqField(t *testing.T) {
	err := ValidateStruct(&registrationForm{
		Username:        "mogul",
		Password:        "secret1",
		ConfirmPassword: "different",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ConfirmPassword")
}

func TestValidateStructRejectsNonStruct(t *testing.T) {
	require.Error(t, ValidateStruct("not a struct"))
}
