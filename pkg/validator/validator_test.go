package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pteropackages/soar/pkg/exit"
	"github.com/pteropackages/soar/pkg/session"
)

func validUser() map[string]any {
	return map[string]any{
		"username":   "bob",
		"email":      "bob@example.com",
		"first_name": "Bob",
		"last_name":  "Builder",
		"language":   "en",
	}
}

func TestValidate_CreateUser(t *testing.T) {
	result := NewValidator(false).Validate(validUser(), UserCreateRules()...)

	assert.True(t, result.Valid)
	assert.False(t, result.HasErrors())
	assert.NoError(t, result.Err())
}

func TestValidate_MissingKeys(t *testing.T) {
	payload := validUser()
	delete(payload, "email")
	delete(payload, "language")

	result := NewValidator(false).Validate(payload, UserCreateRules()...)
	require.False(t, result.Valid)

	err := result.Err()
	var argErr *session.ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "missing required keys: email, language", argErr.Message)
	assert.Equal(t, exit.ArgumentError, argErr.ExitCode())
}

func TestValidate_SingleMissingKey(t *testing.T) {
	payload := validUser()
	delete(payload, "username")

	err := NewValidator(false).Validate(payload, UserCreateRules()...).Err()
	var argErr *session.ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "missing required key: username", argErr.Message)
}

func TestValidate_TypeAndEmail(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		message string
	}{
		{"non-string username", func(p map[string]any) { p["username"] = 12.0 }, "username: must be a string, got float64"},
		{"bad email", func(p map[string]any) { p["email"] = "not-an-email" }, `email: "not-an-email" is not a valid email address`},
		{"display-name email", func(p map[string]any) { p["email"] = "Bob <bob@example.com>" }, `email: "Bob <bob@example.com>" is not a valid email address`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validUser()
			tt.mutate(payload)

			err := NewValidator(false).Validate(payload, UserCreateRules()...).Err()
			var argErr *session.ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, tt.message, argErr.Message)
		})
	}
}

func TestValidate_UnknownKeysWarnOnly(t *testing.T) {
	payload := validUser()
	payload["nickname"] = "bobby"

	result := NewValidator(false).Validate(payload, UserCreateRules()...)
	assert.True(t, result.Valid)
	assert.True(t, result.HasWarnings())
	assert.Equal(t, []string{"nickname: is not a known field and will be ignored by the panel"}, result.Warnings())

	strict := NewValidator(true).Validate(payload, UserCreateRules()...)
	assert.False(t, strict.Valid)
	assert.Error(t, strict.Err())
}

func TestValidate_UpdateRequiresData(t *testing.T) {
	result := NewValidator(false).Validate(map[string]any{}, UserUpdateRules()...)
	require.False(t, result.Valid)

	var argErr *session.ArgumentError
	require.True(t, errors.As(result.Err(), &argErr))
	assert.Equal(t, "no data was provided to update", argErr.Message)

	ok := NewValidator(false).Validate(map[string]any{"language": "fr", "password": nil}, UserUpdateRules()...)
	assert.True(t, ok.Valid)
}
